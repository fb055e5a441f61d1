package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/domain/mocks"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
	"github.com/sweepscout/tracker/internal/usecase/catalog"
	"github.com/sweepscout/tracker/internal/usecase/leaderboard"
)

func newQueryContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestGetLeaderboardHandlerDefaultSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLeaderboard := newLeaderboardUseCaseMock(ctrl, []domain.LeaderboardEntry{
		{UserID: "a", Name: "A", TotalBalance: 10},
		{UserID: "b", Name: "B", TotalBalance: 90},
	})
	h := NewLeaderboardHandler(mockLeaderboard)

	c, w := newQueryContext(t, "/leaderboard")

	h.GetLeaderboard(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []leaderboard.RankedEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b", got[0].UserID)
	assert.Equal(t, 1, got[0].Rank)
	assert.True(t, got[0].Top)
}

func TestGetLeaderboardHandlerAscendingByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLeaderboard := newLeaderboardUseCaseMock(ctrl, []domain.LeaderboardEntry{
		{UserID: "b", Name: "Bravo"},
		{UserID: "a", Name: "Alpha"},
	})
	h := NewLeaderboardHandler(mockLeaderboard)

	c, w := newQueryContext(t, "/leaderboard?sort=name&order=asc")

	h.GetLeaderboard(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []leaderboard.RankedEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a", got[0].UserID)
}

func newLeaderboardUseCaseMock(ctrl *gomock.Controller, entries []domain.LeaderboardEntry) domain.LeaderboardUseCase {
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	users := make([]*domain.User, 0, len(entries))
	for _, e := range entries {
		users = append(users, &domain.User{
			ID:   e.UserID,
			Name: e.Name,
			SavedCasinos: []domain.SavedCasino{
				{Balance: e.TotalBalance},
			},
		})
	}
	mockUserRepo.EXPECT().ListWithSavedCasinos().Return(users, nil)
	return leaderboard.NewLeaderboardUseCase(mockUserRepo, logger.NewLogger("test", "debug"))
}

func TestListCasinosHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCasinoCatalog(ctrl)
	mockCatalog.EXPECT().All().Return([]domain.CasinoEntry{
		{ID: "a", Name: "A", Tier: domain.TierSolid, Features: []string{"daily-bonus"}},
		{ID: "b", Name: "B", Tier: domain.TierFantastic, Features: []string{"daily-bonus"}},
		{ID: "c", Name: "C", Tier: domain.TierGreat, Features: []string{"live-chat"}},
	})
	h := NewCatalogHandler(catalog.NewCatalogUseCase(mockCatalog))

	c, w := newQueryContext(t, "/casinos?features=daily-bonus")

	h.ListCasinos(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.CasinoEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	// Default sort: best tier first.
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestGetCasinoHandlerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCasinoCatalog(ctrl)
	mockCatalog.EXPECT().BySlug("nope").Return(nil, false)
	h := NewCatalogHandler(catalog.NewCatalogUseCase(mockCatalog))

	c, w := newQueryContext(t, "/casinos/nope")
	c.Params = gin.Params{{Key: "slug", Value: "nope"}}

	h.GetCasino(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSalesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscord := mocks.NewMockDiscordService(ctrl)
	mockDiscord.EXPECT().LatestSales(gomock.Any()).Return([]domain.DiscordMessage{
		{ID: "1", Content: "50% off gold coins"},
	}, nil)
	h := NewDiscordHandler(mockDiscord)

	c, w := newQueryContext(t, "/discord/sales")

	h.GetSales(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.DiscordMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestGetSalesHandlerUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscord := mocks.NewMockDiscordService(ctrl)
	mockDiscord.EXPECT().LatestSales(gomock.Any()).Return(nil, errors.New("discord: 503"))
	h := NewDiscordHandler(mockDiscord)

	c, w := newQueryContext(t, "/discord/sales")

	h.GetSales(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetFreeScHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscord := mocks.NewMockDiscordService(ctrl)
	mockDiscord.EXPECT().LatestFreeSc(gomock.Any()).Return([]domain.DiscordMessage{
		{ID: "2", Content: "0.3 SC drop, first 100 claims"},
	}, nil)
	h := NewDiscordHandler(mockDiscord)

	c, w := newQueryContext(t, "/discord/free-sc")

	h.GetFreeSc(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.DiscordMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestGetFreeScHandlerUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDiscord := mocks.NewMockDiscordService(ctrl)
	mockDiscord.EXPECT().LatestFreeSc(gomock.Any()).Return(nil, errors.New("discord: 503"))
	h := NewDiscordHandler(mockDiscord)

	c, w := newQueryContext(t, "/discord/free-sc")

	h.GetFreeSc(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
