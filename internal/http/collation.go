package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/vyakarana/internal/sanskrit"
)

const maxSortWords = 10000

// CollationController exposes the varṇamālā ordering for ad-hoc input.
type CollationController struct {
	catalog Catalog
}

func NewCollationController(catalog Catalog) *CollationController {
	return &CollationController{catalog: catalog}
}

// SortRequest is the body of POST /api/collation/sort.
type SortRequest struct {
	Words []string `json:"words" binding:"required"`
}

// CompareRequest is the body of POST /api/collation/compare.
type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareResponse carries the raw comparator result and its sign.
type CompareResponse struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Result int    `json:"result"`
	Order  int    `json:"order"`
}

// Sort handles POST /api/collation/sort
func (cc *CollationController) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "words must be a JSON array of strings")
		return
	}
	if len(req.Words) > maxSortWords {
		respondError(c, http.StatusRequestEntityTooLarge, "too many words")
		return
	}

	c.JSON(http.StatusOK, gin.H{"words": cc.catalog.SortWords(req.Words)})
}

// Compare handles POST /api/collation/compare
func (cc *CollationController) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result := sanskrit.Compare(req.A, req.B)
	order := 0
	switch {
	case result < 0:
		order = -1
	case result > 0:
		order = 1
	}

	c.JSON(http.StatusOK, CompareResponse{A: req.A, B: req.B, Result: result, Order: order})
}
