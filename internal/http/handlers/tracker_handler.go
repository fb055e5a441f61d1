package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/domain"
)

// TrackerHandler handles HTTP requests for the saved-casino tracker
type TrackerHandler struct {
	trackerUseCase domain.TrackerUseCase
	catalog        domain.CasinoCatalog
}

// NewTrackerHandler creates a new tracker handler
func NewTrackerHandler(trackerUseCase domain.TrackerUseCase, catalog domain.CasinoCatalog) *TrackerHandler {
	return &TrackerHandler{
		trackerUseCase: trackerUseCase,
		catalog:        catalog,
	}
}

// SaveRequest represents the save request body
type SaveRequest struct {
	CasinoID   string   `json:"casinoId" example:"zula"`
	DailyScMin *float64 `json:"dailyScMin,omitempty" example:"0.5"`
	DailyScMax *float64 `json:"dailyScMax,omitempty" example:"1.5"`
}

// UnsaveRequest represents the unsave request body
type UnsaveRequest struct {
	CasinoID string `json:"casinoId" example:"zula"`
}

// UpdateAmountsRequest represents the amount-edit request body. The four
// amount fields must all be present; their values are coerced, never
// rejected. Raw bytes keep an explicit null distinguishable from an absent
// key (see coerceAmount).
type UpdateAmountsRequest struct {
	CasinoID     string          `json:"casinoId" example:"zula"`
	Balance      json.RawMessage `json:"balance" swaggertype:"number"`
	DepositTotal json.RawMessage `json:"depositTotal" swaggertype:"number"`
	DailyScMin   json.RawMessage `json:"dailyScMin" swaggertype:"number"`
	DailyScMax   json.RawMessage `json:"dailyScMax" swaggertype:"number"`
}

// VisitRequest represents the visit-recording request body
type VisitRequest struct {
	CasinoID string `json:"casinoId" example:"zula"`
}

// MyCasino is one saved row merged with its catalog entry
type MyCasino struct {
	Saved   *domain.SavedCasino `json:"saved"`
	Catalog *domain.CasinoEntry `json:"catalog,omitempty"`
}

// MyCasinosResponse represents the tracked-casino listing with totals
type MyCasinosResponse struct {
	Casinos []MyCasino           `json:"casinos"`
	Totals  domain.UserAggregate `json:"totals"`
}

// Save handles saving a casino to the user's tracker
// @Summary Save a casino
// @Description Start tracking a casino for the signed-in user
// @Tags my-casinos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveRequest true "Casino to save"
// @Success 200 {object} domain.SavedCasino
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /my/casinos [post]
func (h *TrackerHandler) Save(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	sc, err := h.trackerUseCase.Save(userID, req.CasinoID, req.DailyScMin, req.DailyScMax)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sc)
}

// Unsave handles removing a casino from the user's tracker
// @Summary Unsave a casino
// @Description Stop tracking a casino; the row is removed immediately
// @Tags my-casinos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UnsaveRequest true "Casino to unsave"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /my/casinos [delete]
func (h *TrackerHandler) Unsave(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req UnsaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	if err := h.trackerUseCase.Unsave(userID, req.CasinoID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateAmounts handles overwriting the user-entered amounts
// @Summary Update tracked amounts
// @Description Overwrite balance, deposit total and daily SC range for one saved casino
// @Tags my-casinos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateAmountsRequest true "New amounts"
// @Success 200 {object} domain.SavedCasino
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /my/casinos [put]
func (h *TrackerHandler) UpdateAmounts(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req UpdateAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	// A missing key is a client bug and rejected; a present-but-junk value
	// (explicit null included) is coerced to 0.
	if req.Balance == nil || req.DepositTotal == nil || req.DailyScMin == nil || req.DailyScMax == nil {
		respondError(c, domain.NewAppError(domain.ErrCodeRequiredField,
			"balance, depositTotal, dailyScMin and dailyScMax are required", http.StatusBadRequest, nil))
		return
	}

	sc, err := h.trackerUseCase.UpdateAmounts(userID, req.CasinoID,
		coerceAmount(req.Balance), coerceAmount(req.DepositTotal),
		coerceAmount(req.DailyScMin), coerceAmount(req.DailyScMax))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sc)
}

// RecordVisit handles stamping the visit time
// @Summary Record a casino visit
// @Description Update lastVisited for one saved casino
// @Tags my-casinos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VisitRequest true "Casino visited"
// @Success 200 {object} domain.SavedCasino
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /my/casinos [patch]
func (h *TrackerHandler) RecordVisit(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", http.StatusBadRequest, err))
		return
	}

	sc, err := h.trackerUseCase.RecordVisit(userID, req.CasinoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sc)
}

// List handles the tracked-casino listing
// @Summary List tracked casinos
// @Description The signed-in user's saved casinos merged with catalog data, plus totals
// @Tags my-casinos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MyCasinosResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /my/casinos [get]
func (h *TrackerHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	rows, totals, err := h.trackerUseCase.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	casinos := make([]MyCasino, 0, len(rows))
	for _, row := range rows {
		mc := MyCasino{Saved: row}
		if entry, found := h.catalog.ByID(row.CasinoID); found {
			mc.Catalog = entry
		}
		casinos = append(casinos, mc)
	}

	c.JSON(http.StatusOK, MyCasinosResponse{Casinos: casinos, Totals: totals})
}
