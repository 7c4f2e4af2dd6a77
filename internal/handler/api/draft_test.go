//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/api"
	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFormCommands
	mockQueries  *queriesmock.MockFormQueries
	handler      *api.DraftHandler
	cfg          config.Config
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.cfg = config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFormCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFormQueries(s.mockCtrl)
	s.handler = api.NewDraftHandler(s.mockCommands, s.mockQueries, s.cfg)

	s.router.POST("/drafts", s.handler.Create)
	s.router.GET("/drafts/:id", s.handler.Get)
	s.router.PATCH("/drafts/:id", s.handler.UpdateField)
	s.router.POST("/drafts/:id/submit", s.handler.Submit)
	s.router.GET("/session/draft", s.handler.Current)
	s.router.POST("/checkout", s.handler.Checkout)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func handedOff(draftID uuid.UUID) *commands.SubmitResult {
	d := builder.NewDraftBuilder().BuildDomain()
	req, _ := payment.NewRequest(d, "RESERVA-1741964966000", payment.DefaultSettings())
	return &commands.SubmitResult{
		DraftID:  draftID,
		Checkout: &payment.Checkout{Key: "test-public-key", Test: true, ScriptURL: "https://checkout.epayco.co/checkout.js", Request: req},
	}
}

func missing(fields ...reservation.Field) error {
	d := builder.NewDraftBuilder().BuildDomain()
	ve := reservation.Validate(d)
	for _, f := range fields {
		ve[f] = "missing " + f.String()
	}
	return reservation.NewValidationError(ve)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *DraftHandlerTestSuite) TestCreate() {
	s.Run("success: 201 with session cookie", func() {
		snap := builder.NewDraftBuilder().Empty().BuildSnapshot()
		s.mockCommands.EXPECT().StartDraft(gomock.Any()).Return(&snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(snap.ID, body.ID)
		s.Equal("COP 0", body.PriceDisplay)

		c := httptest.ExtractCookie(rec, cookie.DraftCookieName)
		s.Require().NotNil(c)
		s.Equal(snap.ID.String(), c.Value)
		s.True(c.HttpOnly)
		s.Equal(int(s.cfg.DraftStore.TTL.Seconds()), c.MaxAge)
	})

	s.Run("error: 500 when store fails", func() {
		s.mockCommands.EXPECT().StartDraft(gomock.Any()).
			Return(nil, errs.Mark(errors.New("redis down"), errs.ErrStoreOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.Nil(httptest.ExtractCookie(rec, cookie.DraftCookieName))
	})
}

// ================================================================================
// TestGet / TestCurrent
// ================================================================================

func (s *DraftHandlerTestSuite) TestGet() {
	snap := builder.NewDraftBuilder().BuildSnapshot()

	s.Run("success: 200 with quote", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+snap.ID.String(), nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(140000), body.TotalPrice)
		s.Equal(3, body.Guests)
		s.Equal("COP 140.000", body.PriceDisplay)
		s.Equal("deluxe", body.RoomType)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/not-a-uuid", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid draft ID format")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), gomock.Any()).Return(nil, errs.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+uuid.NewString(), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}

func (s *DraftHandlerTestSuite) TestCurrent() {
	snap := builder.NewDraftBuilder().BuildSnapshot()

	s.Run("success: resumes draft from cookie", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), snap.ID).Return(&snap, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/session/draft", nil,
			[]*http.Cookie{{Name: cookie.DraftCookieName, Value: snap.ID.String()}})

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(snap.ID, body.ID)
	})

	s.Run("error: 404 without cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session/draft", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})

	s.Run("error: 404 with garbage cookie", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/session/draft", nil,
			[]*http.Cookie{{Name: cookie.DraftCookieName, Value: "garbage"}})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}

// ================================================================================
// TestUpdateField
// ================================================================================

func (s *DraftHandlerTestSuite) TestUpdateField() {
	id := uuid.New()
	url := "/drafts/" + id.String()
	reqBody := reqdto.UpdateFieldRequest{Field: "roomType", Value: "suite"}

	s.Run("success: 200 with applied flag", func() {
		snap := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.RoomType = "suite" }).BuildSnapshot()
		s.mockCommands.EXPECT().UpdateField(gomock.Any(), id, reqBody).
			Return(&commands.UpdateFieldResult{Draft: snap, Applied: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		var body resdto.UpdateFieldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Applied)
		s.Equal(int64(170000), body.Draft.TotalPrice)
	})

	s.Run("rejected phone: 200 with applied=false", func() {
		snap := builder.NewDraftBuilder().BuildSnapshot()
		s.mockCommands.EXPECT().UpdateField(gomock.Any(), id, gomock.Any()).
			Return(&commands.UpdateFieldResult{Draft: snap, Applied: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateFieldRequest{Field: "phone", Value: "12a"})

		var body resdto.UpdateFieldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Applied)
		s.Equal("3001234567", body.Draft.Phone)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: field (required)", mutate: testutil.Field("field", nil)},
			{name: "empty field", mutate: testutil.Field("field", "")},
			{name: "wrong type: value", mutate: testutil.Field("value", 3)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 on unknown field", func() {
		s.mockCommands.EXPECT().UpdateField(gomock.Any(), id, gomock.Any()).
			Return(nil, reservation.ErrUnknownField).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateFieldRequest{Field: "nights", Value: "2"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown field")
	})

	s.Run("error: 404 when draft expired", func() {
		s.mockCommands.EXPECT().UpdateField(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *DraftHandlerTestSuite) TestSubmit() {
	id := uuid.New()
	url := "/drafts/" + id.String() + "/submit"

	s.Run("success: 201 with checkout handoff and cleared cookie", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(handedOff(id), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{{Name: cookie.DraftCookieName, Value: id.String()}})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body["draftId"])
		checkout := body["checkout"].(map[string]any)
		s.Equal("test-public-key", checkout["key"])
		data := checkout["data"].(map[string]any)
		s.Equal(float64(140000), data["amount"])
		s.Equal("RESERVA-1741964966000", data["invoice"])
		s.Equal("COP", data["currency"])

		c := httptest.ExtractCookie(rec, cookie.DraftCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	})

	s.Run("success: cookie for another draft is kept", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(handedOff(id), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{{Name: cookie.DraftCookieName, Value: uuid.NewString()}})

		s.Equal(http.StatusCreated, rec.Code)
		s.Nil(httptest.ExtractCookie(rec, cookie.DraftCookieName))
	})

	s.Run("success: no session cookie leaves cookies untouched", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(handedOff(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		s.Equal(http.StatusCreated, rec.Code)
		s.Nil(httptest.ExtractCookie(rec, cookie.DraftCookieName))
	})

	s.Run("error: 422 with per-field messages", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, uuid.Nil).
			Return(nil, missing(reservation.FieldName, reservation.FieldCheckIn)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		var detail resdto.ValidationDetail
		s.Require().NoError(json.Unmarshal(body.Detail, &detail))
		s.Equal(map[string]string{"name": "missing name", "checkIn": "missing checkIn"}, detail.Fields)
		s.Equal([]string{"missing name", "missing checkIn"}, detail.Summary)
		s.Nil(httptest.ExtractCookie(rec, cookie.DraftCookieName))
	})

	s.Run("error: 502 when gateway fails", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, uuid.Nil).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrGatewayUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment gateway unavailable")
	})

	s.Run("error: 404 when draft missing", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(nil, errs.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})

	s.Run("replay: 200 with replayed header", func() {
		key := uuid.New()
		replayed := handedOff(id)
		replayed.Replayed = true
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, key).Return(replayed, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			map[string]string{"Idempotency-Key": key.String()})

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.DraftID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 409 while the key is processing", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Submit(gomock.Any(), id, key).Return(nil, errs.ErrIdempotencyInProgress).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Submission is currently being processed")
		s.Nil(httptest.ExtractCookie(rec, cookie.DraftCookieName))
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			map[string]string{"Idempotency-Key": "retry-1"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *DraftHandlerTestSuite) TestCheckout() {
	reqBody := builder.NewDraftBuilder().BuildCheckoutRequestDTO()

	s.Run("success: 201 with handoff", func() {
		draftID := uuid.New()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), reqBody, uuid.Nil).Return(handedOff(draftID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(draftID, body.DraftID)
		s.Equal(int64(140000), body.Checkout.Request.Amount)
	})

	s.Run("error: 422 when fields are missing", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), uuid.Nil).
			Return(nil, missing(reservation.FieldPhone)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("phone", nil)))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 400 on malformed json", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("adults", 2)))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
	s.Run("error: 409 when key was used for another form", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), reqBody, key).Return(nil, errs.ErrIdempotencyKeyReused).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/checkout", reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Idempotency key already used for a different request")
	})
}
