package api

import (
	"bytes"
	"net/http"

	"appointment-agent/internal/domain/appointment"
	reqdto "appointment-agent/internal/handler/dto/request"
	resdto "appointment-agent/internal/handler/dto/response"
	"appointment-agent/internal/handler/httperr"
	"appointment-agent/internal/pkg/errs"
	"appointment-agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const msgAppointmentNotFound = "Appointment not found"

type AppointmentHandler struct {
	service usecase.AppointmentService
}

func NewAppointmentHandler(service usecase.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// @Summary List appointments
// @Description Get every appointment with its customer
// @Tags appointments
// @Produce json
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 500 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetAll(c *gin.Context) {
	all, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	res, err := resdto.FromAppointments(all)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get appointment
// @Description Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c, msgAppointmentNotFound)
	if !ok {
		return
	}

	a, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	if !found {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("appointment not found"), msgAppointmentNotFound, nil)
		return
	}

	res, err := resdto.FromAppointment(a)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create appointment
// @Description Create an appointment. The customer is identified by first name, last name and phone. A date without a zone offset is read as UTC.
// @Tags appointments
// @Accept json
// @Produce json
// @Param x-agent-api-key header string false "Agent API key, required when the server has one configured"
// @Param request body reqdto.AppointmentRequest true "Appointment"
// @Success 201 {object} resdto.AppointmentResponse
// @Header 201 {string} Location "/appointments/{id}"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	a, ok := bindAppointment(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), a)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	res, err := resdto.FromAppointment(created)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.Header("Location", "/appointments/"+created.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Update appointment
// @Description Replace the customer, date and status of an appointment
// @Tags appointments
// @Accept json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.AppointmentRequest true "Appointment"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parsePathID(c, msgAppointmentNotFound)
	if !ok {
		return
	}
	a, ok := bindAppointment(c)
	if !ok {
		return
	}

	updated, err := h.service.TryUpdate(c.Request.Context(), id, a)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if !updated {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("appointment not found"), msgAppointmentNotFound, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete appointment
// @Description Delete an appointment by ID
// @Tags appointments
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parsePathID(c, msgAppointmentNotFound)
	if !ok {
		return
	}

	deleted, err := h.service.TryDelete(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if !deleted {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("appointment not found"), msgAppointmentNotFound, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// parsePathID answers 404 for an id that is not a UUID, the same as an
// id that matches nothing.
func parsePathID(c *gin.Context, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.Wrap(err, "malformed path id"), notFoundMsg, nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindAppointment maps an empty or null body to a nil appointment so the
// service decides how to reject it.
func bindAppointment(c *gin.Context) (*appointment.Appointment, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.AbortInvalidRequest(c, err)
		return nil, false
	}
	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, true
	}

	var req reqdto.AppointmentRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return nil, false
	}
	a, err := req.ToDomain()
	if err != nil {
		httperr.AbortInvalidRequest(c, err)
		return nil, false
	}
	return a, true
}

func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Appointment is required", nil)
	default:
		httperr.AbortInternal(c, err)
	}
}
