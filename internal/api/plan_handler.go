package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	msgMissingProfileFields = "Please fill in all fields before generating a plan."
	msgInvalidBody          = "Invalid request body"
	msgPlanFailed           = "Failed to generate plan"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
	delay       time.Duration
	log         zerolog.Logger
}

// NewPlanHandler creates a new PlanHandler. delay is the pause inserted
// before a plan is returned.
func NewPlanHandler(planService service.PlanService, delay time.Duration, logger zerolog.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, delay: delay, log: logger}
}

// NarrationResponse carries the read-aloud text of a plan.
type NarrationResponse struct {
	Text string `json:"text"`
}

// GeneratePlan godoc
// @Summary Generate a fitness plan
// @Description Returns a workout routine, meal plan and motivational message for the profile's goal and level.
// @Tags Plans
// @Accept json
// @Produce json
// @Param profile body domain.Profile true "User profile"
// @Success 200 {object} domain.Plan
// @Failure 400 {object} gin.H "Missing fields or malformed body"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /plan [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	profile, ok := h.bindProfile(c)
	if !ok {
		return
	}

	if !pause(c.Request.Context(), h.delay) {
		h.log.Debug().Str("request_id", c.GetString(ContextRequestIDKey)).Msg("client went away during plan pacing")
		c.Abort()
		return
	}

	plan := h.planService.ResolvePlan(profile.Name, profile.Goal, profile.Level)
	c.JSON(http.StatusOK, plan)
}

// NarratePlan godoc
// @Summary Read-aloud text for a plan
// @Description Resolves the plan for the profile and renders it as plain text for speech output.
// @Tags Plans
// @Accept json
// @Produce json
// @Param profile body domain.Profile true "User profile"
// @Success 200 {object} NarrationResponse
// @Failure 400 {object} gin.H "Missing fields or malformed body"
// @Router /plan/narration [post]
func (h *PlanHandler) NarratePlan(c *gin.Context) {
	profile, ok := h.bindProfile(c)
	if !ok {
		return
	}

	plan := h.planService.ResolvePlan(profile.Name, profile.Goal, profile.Level)
	c.JSON(http.StatusOK, NarrationResponse{Text: service.Narrate(profile.Name, plan)})
}

// bindProfile rejects incomplete profiles before anything is resolved.
func (h *PlanHandler) bindProfile(c *gin.Context) (domain.Profile, bool) {
	var req domain.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			abortWithError(c, http.StatusBadRequest, msgMissingProfileFields)
		} else {
			h.log.Debug().Err(err).Msg("plan request body rejected")
			abortWithError(c, http.StatusBadRequest, msgInvalidBody)
		}
		return domain.Profile{}, false
	}
	return req, true
}
