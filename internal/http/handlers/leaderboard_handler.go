package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/usecase/leaderboard"
)

// LeaderboardHandler handles HTTP requests for the public leaderboard
type LeaderboardHandler struct {
	leaderboardUseCase domain.LeaderboardUseCase
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardUseCase domain.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUseCase: leaderboardUseCase}
}

// GetLeaderboard handles the leaderboard read
// @Summary Leaderboard
// @Description Ranked users by tracked value. sort=total_balance|daily_bonus|name, order=asc|desc
// @Tags leaderboard
// @Produce json
// @Param sort query string false "Sort column" default(total_balance)
// @Param order query string false "Sort direction" default(desc)
// @Success 200 {array} leaderboard.RankedEntry
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	key := leaderboard.ParseSortKey(c.Query("sort"))
	descending := c.DefaultQuery("order", "desc") != "asc"

	entries := h.leaderboardUseCase.GetLeaderboard()
	c.JSON(http.StatusOK, leaderboard.Rank(entries, key, descending))
}
