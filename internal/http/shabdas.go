package http

import (
	"github.com/gin-gonic/gin"
)

// ShabdasController serves declension tables.
type ShabdasController struct {
	catalog Catalog
}

func NewShabdasController(catalog Catalog) *ShabdasController {
	return &ShabdasController{catalog: catalog}
}

// List handles GET /api/shabdas
func (sc *ShabdasController) List(c *gin.Context) {
	shabdas, stale, err := sc.catalog.Shabdas(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "shabdas")
		return
	}
	respondList(c, shabdas, len(shabdas), stale)
}

// Get handles GET /api/shabdas/:id
func (sc *ShabdasController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	shabda, stale, err := sc.catalog.Shabda(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err, "shabda")
		return
	}
	respondData(c, shabda, stale)
}

// GetByIndex handles GET /api/shabdas/index/:orderIndex
func (sc *ShabdasController) GetByIndex(c *gin.Context) {
	orderIndex, ok := parseIntParam(c, "orderIndex")
	if !ok {
		return
	}

	shabda, stale, err := sc.catalog.ShabdaAt(c.Request.Context(), orderIndex)
	if err != nil {
		respondCatalogError(c, err, "shabda")
		return
	}
	respondData(c, shabda, stale)
}
