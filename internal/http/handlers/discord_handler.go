package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/domain"
)

// DiscordHandler exposes the scraped community feeds
type DiscordHandler struct {
	discordService domain.DiscordService
}

// NewDiscordHandler creates a new discord handler
func NewDiscordHandler(discordService domain.DiscordService) *DiscordHandler {
	return &DiscordHandler{discordService: discordService}
}

// GetSales handles the sales feed read
// @Summary Latest sales announcements
// @Description Most recent messages from the community sales channel
// @Tags discord
// @Produce json
// @Success 200 {array} domain.DiscordMessage
// @Failure 502 {object} domain.ErrorResponse
// @Router /discord/sales [get]
func (h *DiscordHandler) GetSales(c *gin.Context) {
	messages, err := h.discordService.LatestSales(c.Request.Context())
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeDiscordServiceError, "Failed to fetch sales feed", http.StatusBadGateway, err))
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GetFreeSc handles the free-SC drop feed read
// @Summary Latest free SC drops
// @Description Most recent messages from the free SC drops channel
// @Tags discord
// @Produce json
// @Success 200 {array} domain.DiscordMessage
// @Failure 502 {object} domain.ErrorResponse
// @Router /discord/free-sc [get]
func (h *DiscordHandler) GetFreeSc(c *gin.Context) {
	messages, err := h.discordService.LatestFreeSc(c.Request.Context())
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeDiscordServiceError, "Failed to fetch free SC feed", http.StatusBadGateway, err))
		return
	}
	c.JSON(http.StatusOK, messages)
}
