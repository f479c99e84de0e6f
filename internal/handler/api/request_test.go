//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"eventora/internal/domain/actor"
	"eventora/internal/handler/api"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/pkg/errs"
	"eventora/internal/usecase/queries"
	"eventora/tests/common/builder"
	"eventora/tests/common/httptest"
	"eventora/tests/common/testutil"
	commandsmock "eventora/tests/mock/commands"
	queriesmock "eventora/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueryService
	handler      *api.RequestHandler
	userID       uuid.UUID
	userRole     actor.Role
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueryService(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.userRole = actor.RoleClient

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
		c.Next()
	}

	s.router.POST("/requests", authMiddleware, s.handler.Create)
	s.router.GET("/requests", authMiddleware, s.handler.List)
	s.router.GET("/requests/stats", authMiddleware, s.handler.Stats)
	s.router.GET("/requests/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/requests/:id/respond", authMiddleware, s.handler.Respond)
	s.router.PUT("/requests/:id/accept", authMiddleware, s.handler.Accept)
	s.router.PUT("/requests/:id/reject", authMiddleware, s.handler.Reject)
	s.router.PUT("/requests/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

type testCaseRequest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RequestHandlerTestSuite) TestCreate() {
	url := "/requests"

	b := builder.NewServiceRequestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	detail := b.BuildDetail()

	s.Run("success: returns 201 Created with request detail", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(detail.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RequestDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(detail.ID.String(), response.ID)
		s.Equal("Pendiente", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseRequest{
			{name: "missing field: provider_id", mutate: testutil.Field("provider_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: event_date", mutate: testutil.Field("event_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: event_type", mutate: testutil.Field("event_type", nil), expectCode: http.StatusBadRequest},
			{name: "malformed event_date", mutate: testutil.Field("event_date", "15/06/2026"), expectCode: http.StatusBadRequest},
			{name: "zero guest_count", mutate: testutil.Field("guest_count", 0), expectCode: http.StatusBadRequest},
			{name: "negative budget_estimate", mutate: testutil.Field("budget_estimate", -100), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandErr     error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation rejected",
				commandErr:     errs.Mark(errs.New("event date is in the past"), errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Create request failed",
			},
			{
				name:           "unknown failure",
				commandErr:     errs.New("connection reset"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
					Return(uuid.Nil, tc.commandErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RequestHandlerTestSuite) TestGet() {
	b := builder.NewServiceRequestBuilder()
	detail := b.BuildDetail()
	url := "/requests/" + detail.ID.String()

	s.Run("success: party reads its own request", func() {
		detail.ClientID = s.userID
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.RequestDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(detail.ID.String(), response.ID)
	})

	s.Run("success: admin reads any request", func() {
		s.userRole = actor.RoleAdmin
		defer func() { s.userRole = actor.RoleClient }()

		stranger := builder.NewServiceRequestBuilder().BuildDetail()
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), stranger.ID).
			Return(stranger, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+stranger.ID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for a third party", func() {
		stranger := builder.NewServiceRequestBuilder().BuildDetail()
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), stranger.ID).
			Return(stranger, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+stranger.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not a party")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing request", func() {
		missingID := uuid.New()
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), missingID).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+missingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *RequestHandlerTestSuite) TestList() {
	url := "/requests"

	b := builder.NewServiceRequestBuilder()
	items := []queries.RequestListItem{
		{
			ID:           uuid.New(),
			ClientID:     s.userID,
			ClientName:   "Laura Gómez",
			ProviderID:   b.ProviderID,
			ProviderName: "Eventos del Valle",
			EventDate:    b.EventDate,
			EventType:    b.EventType,
			Status:       "Pendiente",
			SentAt:       b.Now,
		},
	}

	s.Run("success: returns caller's requests", func() {
		s.mockQueries.EXPECT().ListForActor(gomock.Any(), s.userID, actor.RoleClient, queries.RequestFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.RequestListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(items[0].ID.String(), response[0].ID)
	})

	s.Run("success: forwards status and limit filters", func() {
		status := "Aceptada"
		s.mockQueries.EXPECT().ListForActor(gomock.Any(), s.userID, actor.RoleClient,
			queries.RequestFilter{Status: &status, Limit: 10}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=Aceptada&limit=10", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for a non-positive limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=0", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 Bad Request for a status outside the lifecycle enum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=Pending", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *RequestHandlerTestSuite) TestStats() {
	url := "/requests/stats"

	s.Run("success: returns lifecycle breakdown", func() {
		stats := queries.RequestStats{Total: 4, Pending: 1, Answered: 1, Accepted: 2}
		s.mockQueries.EXPECT().Stats(gomock.Any(), s.userID, actor.RoleClient).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.RequestStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(4, response.Total)
		s.Equal(2, response.Accepted)
	})
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *RequestHandlerTestSuite) TestRespond() {
	b := builder.NewServiceRequestBuilder()
	detail := b.BuildDetail()
	url := "/requests/" + detail.ID.String() + "/respond"

	body := map[string]any{
		"message": "Podemos atender su evento",
		"price":   1800,
	}

	s.Run("success: returns 200 OK with updated detail", func() {
		detail.Status = "Respondida"
		s.mockCommands.EXPECT().Respond(gomock.Any(), s.userID, detail.ID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		var response resdto.RequestDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Respondida", response.Status)
	})

	s.Run("error: 400 Bad Request when price is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"message": "hola"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict when already answered", func() {
		s.mockCommands.EXPECT().Respond(gomock.Any(), s.userID, detail.ID, gomock.Any()).
			Return(errs.Mark(errs.New("request already answered"), errs.ErrInvalidState)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Respond failed")
	})
}

// ================================================================================
// TestAccept
// ================================================================================

func (s *RequestHandlerTestSuite) TestAccept() {
	b := builder.NewServiceRequestBuilder()
	detail := b.BuildDetail()
	url := "/requests/" + detail.ID.String() + "/accept"

	s.Run("success: returns 200 OK with accepted detail", func() {
		detail.Status = "Aceptada"
		s.mockCommands.EXPECT().Accept(gomock.Any(), s.userID, detail.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")

		var response resdto.RequestDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Aceptada", response.Status)
	})

	s.Run("error: 409 Conflict when the date is already booked", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), s.userID, detail.ID).
			Return(errs.Mark(errs.New("date is already booked"), errs.ErrInvalidState)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Accept failed")
	})

	s.Run("error: 403 Forbidden when caller is not the client", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), s.userID, detail.ID).
			Return(errs.Mark(errs.New("actor is not a party"), errs.ErrPermissionDenied)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Accept failed")
	})
}

// ================================================================================
// TestReject
// ================================================================================

func (s *RequestHandlerTestSuite) TestReject() {
	b := builder.NewServiceRequestBuilder()
	detail := b.BuildDetail()
	url := "/requests/" + detail.ID.String() + "/reject"

	s.Run("success: provider reject passes isProvider", func() {
		s.userRole = actor.RoleProvider
		defer func() { s.userRole = actor.RoleClient }()

		detail.Status = "Rechazada"
		s.mockCommands.EXPECT().Reject(gomock.Any(), s.userID, true, detail.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: client reject passes isProvider false", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), s.userID, false, detail.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *RequestHandlerTestSuite) TestCancel() {
	b := builder.NewServiceRequestBuilder()
	detail := b.BuildDetail()
	url := "/requests/" + detail.ID.String() + "/cancel"

	s.Run("success: returns 200 OK with canceled detail", func() {
		detail.Status = "Cancelada"
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, detail.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), detail.ID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")

		var response resdto.RequestDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Cancelada", response.Status)
	})

	s.Run("error: 409 Conflict once the request was answered", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, detail.ID).
			Return(errs.Mark(errs.New("only pending requests can be canceled"), errs.ErrInvalidState)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cancel failed")
	})
}
