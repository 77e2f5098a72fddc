package api

import (
	"alcyxob/fitness-coach/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AssetHandler holds the asset service dependency.
type AssetHandler struct {
	assetService service.AssetService
	delay        time.Duration
	log          zerolog.Logger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService service.AssetService, delay time.Duration, logger zerolog.Logger) *AssetHandler {
	return &AssetHandler{assetService: assetService, delay: delay, log: logger}
}

// AssetResponse is the DTO for a resolved image.
type AssetResponse struct {
	Image string `json:"image"`
}

// ResolveAsset godoc
// @Summary Pick a motivational image
// @Description Matches the prompt against the goal vocabulary. Any body, including a malformed one, gets an image.
// @Tags Assets
// @Accept json
// @Produce json
// @Param request body object false "{\"prompt\": \"...\"}"
// @Success 200 {object} AssetResponse
// @Router /asset [post]
func (h *AssetHandler) ResolveAsset(c *gin.Context) {
	prompt := h.promptFrom(c)

	if !pause(c.Request.Context(), h.delay) {
		c.Abort()
		return
	}

	entry := h.assetService.ResolveAsset(prompt)
	c.JSON(http.StatusOK, AssetResponse{Image: h.assetService.Reference(c.Request.Context(), entry)})
}

// promptFrom returns the body's prompt when it is a string and nil in every
// other case: no body, bad JSON, missing field, or a non-string value.
func (h *AssetHandler) promptFrom(c *gin.Context) *string {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Debug().Err(err).Msg("asset request body ignored")
		return nil
	}
	prompt, ok := body["prompt"].(string)
	if !ok {
		return nil
	}
	return &prompt
}
