package api

import (
	"net/http"

	resdto "appointment-agent/internal/handler/dto/response"
	"appointment-agent/internal/handler/httperr"
	"appointment-agent/internal/pkg/errs"
	"appointment-agent/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	q usecase.CustomerQueries
}

func NewCustomerHandler(q usecase.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{q: q}
}

// @Summary Get customer
// @Description Get a customer with its appointments
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parsePathID(c, "Customer not found")
	if !ok {
		return
	}

	customer, found, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	if !found {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("customer not found"), "Customer not found", nil)
		return
	}

	res, err := resdto.FromCustomer(customer)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
