//go:build e2e

package availability_test

import (
	"net/http"
	"testing"

	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/handler/dto/response"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/tests/common/dbtest"
	"appointment-scheduler/tests/common/httptest"
	"appointment-scheduler/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AvailabilitySuite struct {
	e2e.SharedSuite
}

func (s *AvailabilitySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AvailabilitySuite))
}

func (s *AvailabilitySuite) TestAvailableSlots() {
	s.Run("Normal case: full grid of an empty working day", func() {
		t := s.T()
		_, token := s.Login("ana@example.com", user.RoleUser.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/appointments/available-slots?date=2030-03-15", nil, token)
		var res response.AvailableSlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		// 08:00 up to but excluding 19:00 every 30 minutes, minus the two lunch slots.
		require.Len(t, res.AvailableSlots, 20)
		assert.Equal(t, "08:00", res.AvailableSlots[0])
		assert.Equal(t, "18:30", res.AvailableSlots[len(res.AvailableSlots)-1])
		assert.NotContains(t, res.AvailableSlots, "12:00")
		assert.NotContains(t, res.AvailableSlots, "12:30")
		assert.Equal(t, response.BusinessHoursResponse{Start: "08:00", End: "19:00"}, res.BusinessHours)
	})

	s.Run("Normal case: weekend has no slots", func() {
		t := s.T()
		_, token := s.Login("ana@example.com", user.RoleUser.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/appointments/available-slots?date=2030-03-17", nil, token)
		var res response.AvailableSlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Empty(t, res.AvailableSlots)
	})

	s.Run("Normal case: closing minute validates but is never generated", func() {
		t := s.T()
		_, token := s.Login("ana@example.com", user.RoleUser.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/appointments/validate?date=2030-03-15&time=19:00", nil, token)
		var res response.SlotValidationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.True(t, res.Available)
	})

	s.Run("Normal case: validate reports the first failing check", func() {
		t := s.T()
		_, token := s.Login("ana@example.com", user.RoleUser.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/appointments/validate?date=2030-03-15&time=12:00", nil, token)
		var res response.SlotValidationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.False(t, res.Available)
		assert.Equal(t, string(errs.ReasonBreakPeriod), res.Reason)
	})

	s.Run("Error case: 400 for a malformed date", func() {
		t := s.T()
		_, token := s.Login("ana@example.com", user.RoleUser.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/appointments/available-slots?date=2030-02-30", nil, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *AvailabilitySuite) TestPublicEndpoints() {
	s.Run("Normal case: services lists only active entries", func() {
		t := s.T()
		dbtest.CreateTestService(t, s.DB, "Beard Trim", "razor", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services", nil, "")
		var res []response.ServiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		names := make([]string, 0, len(res))
		for _, svc := range res {
			names = append(names, svc.Name)
		}
		assert.ElementsMatch(t, []string{"Beard Trim", "Haircut", "Manicure"}, names)
	})

	s.Run("Normal case: calendar describes the configured week", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/calendar", nil, "")
		var res response.CalendarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, 30, res.IntervalMinutes)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, res.WorkingDays)
		assert.Equal(t, "UTC", res.TimeZone)
	})

	s.Run("Normal case: metrics are exposed after a query", func() {
		t := s.T()
		_, token := s.Login("ana@example.com", user.RoleUser.String())
		httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/appointments/available-slots?date=2030-03-15", nil, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/metrics", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "scheduler_e2e_availability_queries_total")
	})

	s.Run("Normal case: health", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
