//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/handler/api"
	resdto "appointment-scheduler/internal/handler/dto/response"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/commands"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/tests/common/builder"
	"appointment-scheduler/tests/common/httptest"
	"appointment-scheduler/tests/common/testutil"
	commandsmock "appointment-scheduler/tests/mock/commands"
	queriesmock "appointment-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const roleHeader = "X-Test-Role"

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	userID       uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := fakeAuth(s.userID)

	s.router.POST("/appointments", authMiddleware, s.handler.Create)
	s.router.POST("/appointments/admin", authMiddleware, s.handler.CreateForOwner)
	s.router.GET("/appointments", authMiddleware, s.handler.ListMine)
	s.router.GET("/appointments/all", authMiddleware, s.handler.ListAll)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/appointments/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/appointments/:id", authMiddleware, s.handler.Cancel)
	s.router.DELETE("/appointments/:id/complete", authMiddleware, s.handler.Complete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// fakeAuth stands in for the JWT middleware. The role comes from a test header.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.RoleUser
		if r := c.GetHeader(roleHeader); r != "" {
			role = user.Role(r)
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func (s *AppointmentHandlerTestSuite) perform(method, url string, body any, role user.Role) *httptest.Recorder {
	req := httptest.NewJSONRequest(s.T(), method, url, body, "bearer-token")
	req.Header.Set(roleHeader, role.String())
	return httptest.Serve(s.router, req)
}

type testCaseAppointment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"
	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: 201 Created with Location and the stored appointment", func() {
		view := builder.NewAppointmentBuilder().With(func(a *builder.AppointmentBuilder) { a.OwnerID = s.userID }).BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateAppointmentInput{
			Actor:       user.Actor{ID: s.userID, Role: user.RoleUser},
			OwnerID:     s.userID,
			ServiceName: reqBody.ServiceName,
			Date:        reqBody.Date,
			Time:        reqBody.Time,
		}).Return(view, nil).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody, user.RoleUser)

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID, res.ID)
		s.Equal("2024-03-15", res.Date)
		s.Equal("10:00", res.Time)
		s.Equal("Haircut", res.ServiceName)
		httptest.AssertCreatedAt(s.T(), rec, "/api/appointments/"+view.ID.String())
	})

	s.Run("error: 400 Bad Request on malformed bodies", func() {
		testCases := []testCaseAppointment{
			{name: "missing service_name", mutate: testutil.Field("service_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing time", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
			{name: "empty time", mutate: testutil.Field("time", ""), expectCode: http.StatusBadRequest},
			{name: "service name too long", mutate: testutil.Field("service_name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
			{name: "date of wrong type", mutate: testutil.Field("date", 20240315), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := s.perform(http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), user.RoleUser)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 Conflict carries the rejection reason", func() {
		reasons := []errs.UnavailableReason{
			errs.ReasonNonWorkingDay,
			errs.ReasonOutsideHours,
			errs.ReasonBreakPeriod,
			errs.ReasonAlreadyBooked,
		}
		for _, reason := range reasons {
			s.Run(string(reason), func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errs.NewUnavailable(reason)).Times(1)

				rec := s.perform(http.MethodPost, url, reqBody, user.RoleUser)
				httptest.AssertUnavailableResponse(s.T(), rec, string(reason))
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "input error keeps its message",
				commandsError:  errs.NewInputError("invalid date, expected YYYY-MM-DD"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid date, expected YYYY-MM-DD",
			},
			{
				name:           "forbidden",
				commandsError:  errs.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "owner not found",
				commandsError:  errs.ErrOwnerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Owner not found",
			},
			{
				name:           "marked database failure",
				commandsError:  errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "unknown error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := s.perform(http.MethodPost, url, reqBody, user.RoleUser)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreateForOwner
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreateForOwner() {
	url := "/appointments/admin"
	reqBody := map[string]any{
		"owner_email":  "bruno@example.com",
		"service_name": "Beard trim",
		"date":         "2024-03-15",
		"time":         "14:30",
	}

	s.Run("success: admin books for the owner found by email", func() {
		view := builder.NewAppointmentBuilder().With(func(a *builder.AppointmentBuilder) {
			a.OwnerEmail = "bruno@example.com"
			a.ServiceName = "Beard trim"
			a.Time = "14:30"
		}).BuildView()
		s.mockCommands.EXPECT().CreateForOwner(gomock.Any(), user.Actor{ID: s.userID, Role: user.RoleAdmin}, commands.CreateForOwnerInput{
			OwnerEmail:  "bruno@example.com",
			ServiceName: "Beard trim",
			Date:        "2024-03-15",
			Time:        "14:30",
		}).Return(view, nil).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody, user.RoleAdmin)

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("bruno@example.com", res.OwnerEmail)
		s.Equal("14:30", res.Time)
	})

	s.Run("error: 400 Bad Request for an invalid owner email", func() {
		rec := s.perform(http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("owner_email", "not-an-email")), user.RoleAdmin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for an unknown owner", func() {
		s.mockCommands.EXPECT().CreateForOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrOwnerNotFound).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody, user.RoleAdmin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Owner not found")
	})

	s.Run("error: 403 Forbidden for a regular user", func() {
		s.mockCommands.EXPECT().CreateForOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/appointments/" + id.String()

	s.Run("success: 200 OK with AppointmentResponse", func() {
		view := builder.NewAppointmentBuilder().With(func(a *builder.AppointmentBuilder) { a.ID = id }).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), user.Actor{ID: s.userID, Role: user.RoleUser}, id).
			Return(view, nil).Times(1)

		rec := s.perform(http.MethodGet, url, nil, user.RoleUser)

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(id, res.ID)
		s.Equal(view.OwnerEmail, res.OwnerEmail)
		s.True(view.StartAt.Equal(res.StartAt))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := s.perform(http.MethodGet, "/appointments/not-a-uuid", nil, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for a missing or foreign appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrAppointmentNotFound).Times(1)

		rec := s.perform(http.MethodGet, url, nil, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

// ================================================================================
// TestListMine / TestListAll
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's appointments", func() {
		views := []*queries.AppointmentView{
			builder.NewAppointmentBuilder().BuildView(),
			builder.NewAppointmentBuilder().With(func(a *builder.AppointmentBuilder) { a.Time = "10:30" }).BuildView(),
		}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), user.Actor{ID: s.userID, Role: user.RoleUser}).
			Return(views, nil).Times(1)

		rec := s.perform(http.MethodGet, "/appointments", nil, user.RoleUser)

		var res []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("10:00", res[0].Time)
		s.Equal("10:30", res[1].Time)
	})

	s.Run("success: no appointments renders an empty array", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any()).
			Return([]*queries.AppointmentView{}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/appointments", nil, user.RoleUser)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *AppointmentHandlerTestSuite) TestListAll() {
	admin := func() user.Actor { return user.Actor{ID: s.userID, Role: user.RoleAdmin} }

	s.Run("success: first page uses the default limit and returns the next cursor", func() {
		views := []*queries.AppointmentView{builder.NewAppointmentBuilder().BuildView()}
		s.mockQueries.EXPECT().ListAll(gomock.Any(), admin(), (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(views, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/appointments/all", nil, user.RoleAdmin)

		var res resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Appointments, 1)
		s.Equal("next-page", res.NextCursor)
	})

	s.Run("success: passes limit and cursor through", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), admin(), &queries.Cursor{After: "abc"}, 10).
			Return([]*queries.AppointmentView{}, nil, nil).Times(1)

		rec := s.perform(http.MethodGet, "/appointments/all?limit=10&after=abc", nil, user.RoleAdmin)

		var res resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Empty(res.Appointments)
		s.Empty(res.NextCursor)
	})

	s.Run("success: oversized limit is clamped", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), admin(), gomock.Nil(), queries.MaxListLimit).
			Return([]*queries.AppointmentView{}, nil, nil).Times(1)

		rec := s.perform(http.MethodGet, "/appointments/all?limit=5000", nil, user.RoleAdmin)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: zero limit falls back to the default", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), admin(), gomock.Nil(), queries.DefaultListLimit).
			Return([]*queries.AppointmentView{}, nil, nil).Times(1)

		rec := s.perform(http.MethodGet, "/appointments/all?limit=0", nil, user.RoleAdmin)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a non-numeric limit", func() {
		rec := s.perform(http.MethodGet, "/appointments/all?limit=ten", nil, user.RoleAdmin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 Bad Request for a garbage cursor", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := s.perform(http.MethodGet, "/appointments/all?after=garbage", nil, user.RoleAdmin)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 403 Forbidden for a regular user", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.ErrForbidden).Times(1)

		rec := s.perform(http.MethodGet, "/appointments/all", nil, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/appointments/" + id.String()

	s.Run("success: only the supplied fields are forwarded", func() {
		view := builder.NewAppointmentBuilder().With(func(a *builder.AppointmentBuilder) {
			a.ID = id
			a.Time = "15:00"
		}).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.UpdateAppointmentInput) (*queries.AppointmentView, error) {
				s.Equal(id, in.ID)
				s.Equal(s.userID, in.Actor.ID)
				s.Nil(in.ServiceName)
				s.Nil(in.Date)
				s.Require().NotNil(in.Time)
				s.Equal("15:00", *in.Time)
				return view, nil
			}).Times(1)

		rec := s.perform(http.MethodPut, url, map[string]any{"time": "15:00"}, user.RoleUser)

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("15:00", res.Time)
	})

	s.Run("error: 400 Bad Request when nothing is supplied", func() {
		rec := s.perform(http.MethodPut, url, map[string]any{}, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Nothing to update")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := s.perform(http.MethodPut, "/appointments/nope", map[string]any{"time": "15:00"}, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 409 Conflict when the target slot is taken", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(nil, errs.NewUnavailable(errs.ReasonAlreadyBooked)).Times(1)

		rec := s.perform(http.MethodPut, url, map[string]any{"date": "2024-03-18", "time": "09:00"}, user.RoleUser)
		httptest.AssertUnavailableResponse(s.T(), rec, string(errs.ReasonAlreadyBooked))
	})

	s.Run("error: 403 Forbidden on someone else's appointment", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := s.perform(http.MethodPut, url, map[string]any{"service_name": "Massage"}, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestCancel / TestComplete
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/appointments/" + id.String()

	s.Run("success: reports who cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), user.Actor{ID: s.userID, Role: user.RoleAdmin}, id).
			Return(&commands.CancelResult{AppointmentID: id, CancelledByAdmin: true}, nil).Times(1)

		rec := s.perform(http.MethodDelete, url, nil, user.RoleAdmin)

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(id.String(), res["appointment_id"])
		s.Equal(true, res["cancelled_by_admin"])
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrAppointmentNotFound).Times(1)

		rec := s.perform(http.MethodDelete, url, nil, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestComplete() {
	id := uuid.New()
	url := "/appointments/" + id.String() + "/complete"

	s.Run("success: 200 OK", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), user.Actor{ID: s.userID, Role: user.RoleAdmin}, id).
			Return(nil).Times(1)

		rec := s.perform(http.MethodDelete, url, nil, user.RoleAdmin)

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Appointment completed", res["message"])
	})

	s.Run("error: 403 Forbidden for a regular user", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), gomock.Any(), id).
			Return(errs.ErrForbidden).Times(1)

		rec := s.perform(http.MethodDelete, url, nil, user.RoleUser)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}
