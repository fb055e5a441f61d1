package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/usecase/catalog"
)

// CatalogHandler handles HTTP requests for the public casino catalog
type CatalogHandler struct {
	catalogUseCase *catalog.CatalogUseCase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUseCase *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase}
}

// ListCasinos handles the catalog listing
// @Summary List casinos
// @Description Catalog entries matching every selected filter value, sorted by tier or name
// @Tags casinos
// @Produce json
// @Param features query []string false "Required feature tags" collectionFormat(multi)
// @Param payment_methods query []string false "Required payment method tags" collectionFormat(multi)
// @Param games query []string false "Required game tags" collectionFormat(multi)
// @Param sort query string false "Sort column (tier or name)" default(tier)
// @Param order query string false "Sort direction" default(desc)
// @Success 200 {array} domain.CasinoEntry
// @Router /casinos [get]
func (h *CatalogHandler) ListCasinos(c *gin.Context) {
	filters := catalog.Filters{
		Features:       c.QueryArray("features"),
		PaymentMethods: c.QueryArray("payment_methods"),
		Games:          c.QueryArray("games"),
	}

	field := catalog.SortByTier
	if c.Query("sort") == string(catalog.SortByName) {
		field = catalog.SortByName
	}
	descending := c.DefaultQuery("order", "desc") != "asc"

	c.JSON(http.StatusOK, h.catalogUseCase.List(filters, field, descending))
}

// GetCasino handles the casino detail view
// @Summary Casino detail
// @Tags casinos
// @Produce json
// @Param slug path string true "Casino slug"
// @Success 200 {object} domain.CasinoEntry
// @Failure 404 {object} domain.ErrorResponse
// @Router /casinos/{slug} [get]
func (h *CatalogHandler) GetCasino(c *gin.Context) {
	entry, ok := h.catalogUseCase.BySlug(c.Param("slug"))
	if !ok {
		respondError(c, domain.NewAppError(domain.ErrCodeCasinoNotInCatalog, "Casino not found", http.StatusNotFound, nil))
		return
	}
	c.JSON(http.StatusOK, entry)
}
