//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/handler/api"
	resdto "appointment-agent/internal/handler/dto/response"
	"appointment-agent/tests/common/httptest"
	usecasemock "appointment-agent/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *usecasemock.MockCustomerQueries
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = usecasemock.NewMockCustomerQueries(s.mockCtrl)
	h := api.NewCustomerHandler(s.mockQueries)

	s.router.GET("/customers/:id", h.Get)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestGet() {
	s.Run("success: customer with appointments", func() {
		c := appointment.NewCustomer("Matteo", "Baldassarre", "3333333333")
		c.Appointments = []appointment.Appointment{
			{ID: uuid.New(), Date: time.Date(2025, 5, 3, 10, 0, 0, 0, time.UTC), Status: appointment.StatusScheduled},
			{ID: uuid.New(), Date: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), Status: appointment.StatusCancelled},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), c.ID).Return(&c, true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+c.ID.String(), nil, nil)

		var body resdto.CustomerDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(c.ID, body.ID)
		s.Equal("Baldassarre", body.LastName)
		s.Require().Len(body.Appointments, 2)
		s.Equal(appointment.StatusCancelled, body.Appointments[1].Status)
	})

	s.Run("error: 404 when absent", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+id.String(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 404 on id that is not a UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/abc", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 500 on query failure", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, false, errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+id.String(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
