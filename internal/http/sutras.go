package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/vyakarana/internal/catalog"
)

// SutrasController serves Pāṇini's sūtras, the Prātiśākhya and the
// Māheśvara sūtras.
type SutrasController struct {
	catalog Catalog
}

func NewSutrasController(catalog Catalog) *SutrasController {
	return &SutrasController{catalog: catalog}
}

// List handles GET /api/sutras
func (sc *SutrasController) List(c *gin.Context) {
	sutras, stale, err := sc.catalog.Sutras(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "sutras")
		return
	}
	respondList(c, sutras, len(sutras), stale)
}

// Page handles GET /api/sutras/page?current=
// An unknown or missing number shows the first sūtra.
func (sc *SutrasController) Page(c *gin.Context) {
	page, err := sc.catalog.SutraPage(c.Request.Context(), c.Query("current"))
	if err != nil {
		respondCatalogError(c, err, "sutra")
		return
	}
	c.JSON(200, page)
}

// Get handles GET /api/sutras/:number
func (sc *SutrasController) Get(c *gin.Context) {
	number := c.Param("number")
	if _, ok := catalog.ParseSutraNumber(number); !ok {
		respondBadRequest(c, "invalid sutra number")
		return
	}

	sutra, stale, err := sc.catalog.Sutra(c.Request.Context(), number)
	if err != nil {
		respondCatalogError(c, err, "sutra")
		return
	}

	nav := catalog.SutraNavigation{}
	if prev, ok := catalog.PreviousSutraNumber(number); ok {
		nav.Previous = prev
	}
	if next, ok := catalog.NextSutraNumber(number); ok {
		nav.Next = next
	}

	c.JSON(200, gin.H{
		"data":       sutra,
		"navigation": nav,
		"stale":      stale,
	})
}

// ListPratisakhya handles GET /api/pratisakhya
func (sc *SutrasController) ListPratisakhya(c *gin.Context) {
	sutras, stale, err := sc.catalog.PratisakhyaSutras(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "pratisakhya sutras")
		return
	}
	respondList(c, sutras, len(sutras), stale)
}

// GetPratisakhya handles GET /api/pratisakhya/:number
func (sc *SutrasController) GetPratisakhya(c *gin.Context) {
	sutra, stale, err := sc.catalog.PratisakhyaSutra(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondCatalogError(c, err, "pratisakhya sutra")
		return
	}
	respondData(c, sutra, stale)
}

// Maheshvara handles GET /api/maheshvara-sutras
func (sc *SutrasController) Maheshvara(c *gin.Context) {
	c.JSON(200, gin.H{
		"sutras":  catalog.MaheshvaraSutras(),
		"closing": catalog.MaheshvaraClosing,
	})
}
