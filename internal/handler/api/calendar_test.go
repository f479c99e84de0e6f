//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"eventora/internal/domain/actor"
	"eventora/internal/domain/calendar"
	"eventora/internal/handler/api"
	"eventora/internal/pkg/clock"
	"eventora/internal/pkg/errs"
	"eventora/tests/common/httptest"
	commandsmock "eventora/tests/mock/commands"
	queriesmock "eventora/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCalendarCommands
	mockQueries  *queriesmock.MockCalendarQueryService
	handler      *api.CalendarHandler
	now          time.Time
	userID       uuid.UUID
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCalendarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCalendarQueryService(s.mockCtrl)
	s.handler = api.NewCalendarHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(s.now))

	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", actor.RoleProvider)
		c.Next()
	}

	s.router.POST("/calendar/block", authMiddleware, s.handler.Block)
	s.router.POST("/calendar/unblock", authMiddleware, s.handler.Unblock)
	s.router.DELETE("/calendar/:date", authMiddleware, s.handler.DeleteDate)
	s.router.GET("/providers/:id/availability", s.handler.PublicAvailability)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

// ================================================================================
// TestPublicAvailability
// ================================================================================

func (s *CalendarHandlerTestSuite) TestPublicAvailability() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/availability"
	today := calendar.Day(s.now)

	s.Run("success: a past range start is clamped to today", func() {
		to := today.AddDate(0, 0, 5)
		s.mockQueries.EXPECT().PublicAvailability(gomock.Any(), providerID, today, to).
			Return([]calendar.DayView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?from=2020-01-01&to=2026-03-15", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: a future range start passes through unchanged", func() {
		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().PublicAvailability(gomock.Any(), providerID, from, from.AddDate(0, 0, 29)).
			Return([]calendar.DayView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?from=2026-04-01", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?from=01/04/2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestDeleteDate
// ================================================================================

func (s *CalendarHandlerTestSuite) TestDeleteDate() {
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	url := "/calendar/2026-03-20"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteDate(gomock.Any(), s.userID, date).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict for a day held by a booking", func() {
		s.mockCommands.EXPECT().DeleteDate(gomock.Any(), s.userID, date).
			Return(errs.Mark(errs.New("date is held by a confirmed booking"), errs.ErrInvalidState)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Delete failed")
	})

	s.Run("error: 404 Not Found for an unmarked day", func() {
		s.mockCommands.EXPECT().DeleteDate(gomock.Any(), s.userID, date).
			Return(errs.Mark(errs.New("no rows"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Delete failed")
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/calendar/20-03-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}
