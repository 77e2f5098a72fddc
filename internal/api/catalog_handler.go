package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OptionResponse is one choice offered by the profile form.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CatalogResponse lists the accepted goals and levels.
type CatalogResponse struct {
	Goals  []OptionResponse `json:"goals"`
	Levels []OptionResponse `json:"levels"`
}

// GetCatalog godoc
// @Summary List goals and levels
// @Tags Catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func GetCatalog(c *gin.Context) {
	resp := CatalogResponse{}
	for _, g := range domain.Goals() {
		resp.Goals = append(resp.Goals, OptionResponse{Value: g.String(), Label: g.Label()})
	}
	for _, l := range domain.Levels() {
		resp.Levels = append(resp.Levels, OptionResponse{Value: l.String(), Label: l.Label()})
	}
	c.JSON(http.StatusOK, resp)
}
