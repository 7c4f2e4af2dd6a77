package api

import (
	"errors"
	"net/http"

	"hotel-reservation/internal/domain/reservation"
	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

var (
	errNoDraftCookie         = errors.New("no draft cookie")
	errInvalidIdempotencyKey = errors.New("invalid idempotency key format")
)

type DraftHandler struct {
	cmds commands.FormCommands
	q    queries.FormQueries
	cfg  config.Config
}

func NewDraftHandler(cmds commands.FormCommands, q queries.FormQueries, cfg config.Config) *DraftHandler {
	return &DraftHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Start draft
// @Description Start an empty reservation draft for this browser session
// @Tags drafts
// @Produce json
// @Success 201 {object} resdto.DraftResponse
// @Failure 500 {object} map[string]string
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	snap, err := h.cmds.StartDraft(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	cookie.SetDraftCookie(c, h.cfg.Cookie, snap.ID.String(), h.cfg.DraftStore.TTL)
	h.respondDraft(c, http.StatusCreated, snap)
}

// @Summary Get draft
// @Description Get a reservation draft with its current quote
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := parseDraftID(c)
	if !ok {
		return
	}
	h.getDraft(c, id)
}

// @Summary Current draft
// @Description Resume the draft remembered by the session cookie
// @Tags drafts
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /session/draft [get]
func (h *DraftHandler) Current(c *gin.Context) {
	id, err := uuid.Parse(cookie.GetDraftID(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errNoDraftCookie, "Draft not found", nil)
		return
	}
	h.getDraft(c, id)
}

// @Summary Update draft field
// @Description Set a single form field. Phone values with non-digits are ignored (applied=false).
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.UpdateFieldRequest true "Field update"
// @Success 200 {object} resdto.UpdateFieldResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [patch]
func (h *DraftHandler) UpdateField(c *gin.Context) {
	id, ok := parseDraftID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.UpdateField(c.Request.Context(), id, req)
	if err != nil {
		abortWithFormError(c, err)
		return
	}

	draft, err := resdto.FromDraftSnapshot(&result.Draft)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.UpdateFieldResponse{Draft: draft, Applied: result.Applied})
}

// @Summary Submit draft
// @Description Validate the draft and hand the payment request to the checkout widget
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param Idempotency-Key header string false "Replays the first handoff on retry"
// @Success 200 {object} resdto.CheckoutResponse "Replayed"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} resdto.ValidationDetail
// @Failure 502 {object} map[string]string
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	id, ok := parseDraftID(c)
	if !ok {
		return
	}
	key, ok := parseIdempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), id, key)
	if err != nil {
		abortWithFormError(c, err)
		return
	}

	// another draft remembered by this session stays resumable
	if cookie.GetDraftID(c) == id.String() {
		cookie.ClearDraftCookie(c, h.cfg.Cookie)
	}
	respondCheckout(c, result)
}

// @Summary One-shot checkout
// @Description Validate a complete form and hand it to the checkout widget without storing a draft
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Complete form"
// @Param Idempotency-Key header string false "Replays the first handoff on retry"
// @Success 200 {object} resdto.CheckoutResponse "Replayed"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} resdto.ValidationDetail
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *DraftHandler) Checkout(c *gin.Context) {
	key, ok := parseIdempotencyKey(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), req, key)
	if err != nil {
		abortWithFormError(c, err)
		return
	}
	respondCheckout(c, result)
}

func (h *DraftHandler) getDraft(c *gin.Context, id uuid.UUID) {
	snap, err := h.q.GetDraft(c.Request.Context(), id)
	if err != nil {
		abortWithFormError(c, err)
		return
	}
	h.respondDraft(c, http.StatusOK, snap)
}

func (h *DraftHandler) respondDraft(c *gin.Context, status int, snap *reservation.Snapshot) {
	resp, err := resdto.FromDraftSnapshot(snap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

func respondCheckout(c *gin.Context, result *commands.SubmitResult) {
	status := http.StatusCreated
	if result.Replayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCheckout(result.DraftID, result.Checkout))
}

// the header is optional; without it every submit opens a new checkout
func parseIdempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIdempotencyKey, "Invalid idempotency key format", nil)
		return uuid.Nil, false
	}
	return key, true
}

func parseDraftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortWithFormError(c *gin.Context, err error) {
	if ve, ok := reservation.AsValidationError(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed",
			resdto.FromValidationErrors(ve.Fields()))
		return
	}

	switch {
	case errs.Is(err, errs.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errs.Is(err, reservation.ErrUnknownField):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown field", nil)
	case errs.Is(err, errs.ErrGatewayUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway unavailable", nil)
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key already used for a different request", nil)
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission is currently being processed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
