package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.FormQueries
}

func NewQuoteHandler(q queries.FormQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Price quote
// @Description Price a room type and guest counts. Unknown room types price at 0, non-numeric counts as 0.
// @Tags quotes
// @Produce json
// @Param roomType query string false "standard | deluxe | suite"
// @Param adults query string false "Adult count"
// @Param children query string false "Child count"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} map[string]string
// @Router /quotes [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	c.JSON(http.StatusOK, h.q.Quote(req.RoomType, req.Adults, req.Children))
}
