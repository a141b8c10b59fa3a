package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/generator"
	"systemfit/leveling-app/internal/service"
)

// PlanHandler serves quest generation and completion. Plans are transient:
// the client holds the active plan and sends it back on completion.
type PlanHandler struct {
	planService   service.PlanService
	playerService service.PlayerService
}

func NewPlanHandler(planService service.PlanService, playerService service.PlayerService) *PlanHandler {
	return &PlanHandler{planService: planService, playerService: playerService}
}

// --- Request/Response Structs ---

type GeneratePlanRequest struct {
	Muscles       []domain.MuscleGroup        `json:"muscles" binding:"required,min=1"`
	Frequency     generator.TrainingFrequency `json:"frequency" binding:"omitempty,oneof=3x_week every_other_day system_auto custom_split"`
	Volume        generator.VolumeType        `json:"volume" binding:"omitempty,oneof=low_volume high_volume system_auto"`
	PreferredDays []string                    `json:"preferredDays"`
}

type GeneratePlanResponse struct {
	Plan    *domain.WorkoutPlan `json:"plan"`
	Offline bool                `json:"offline"`
}

type CompletePlanRequest struct {
	Plan domain.WorkoutPlan `json:"plan" binding:"required"`
}

// maxPlanXPReward bounds the client-supplied reward. Plans are transient and
// held client-side, so the payload is trusted, but only within this sanity
// range; generated rewards top out around 1150 at level 100.
const maxPlanXPReward = 5000

type CompletePlanResponse struct {
	Player       *domain.Player        `json:"player"`
	Session      domain.WorkoutSession `json:"session"`
	Notification *NotificationResponse `json:"notification,omitempty"`
	XPAwarded    int                   `json:"xpAwarded"`
}

type AlternativesRequest struct {
	ExerciseName  string `json:"exerciseName" binding:"required"`
	MuscleContext string `json:"muscleContext" binding:"required"`
}

// --- Handler Methods ---

// Generate builds a plan for the authenticated player. Level, gender and
// training focus come from the stored player; the request only selects
// muscles and scheduling preferences.
func (h *PlanHandler) Generate(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	player, err := h.playerService.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load player")
		}
		return
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = generator.FrequencyThreePerWeek
	}
	if len(req.PreferredDays) > 0 {
		frequency = generator.FrequencyCustomSplit
	}
	volume := req.Volume
	if volume == "" {
		volume = generator.VolumeSystemAuto
	}

	plan, err := h.planService.RequestWorkoutPlan(c.Request.Context(), generator.PlanRequest{
		Muscles:       req.Muscles,
		Level:         player.Level,
		Frequency:     frequency,
		Gender:        player.Gender,
		Mode:          player.TrainingFocus,
		Volume:        volume,
		PreferredDays: req.PreferredDays,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoMuscles) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate plan")
		}
		return
	}

	c.JSON(http.StatusOK, GeneratePlanResponse{
		Plan:    plan,
		Offline: plan.IsOffline(),
	})
}

// Complete finishes the active quest: xp and history are applied to the
// player and the resulting progression notification is returned.
func (h *PlanHandler) Complete(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	var req CompletePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Plan.Title == "" || req.Plan.XPReward < 0 || req.Plan.XPReward > maxPlanXPReward {
		abortWithError(c, http.StatusBadRequest, "Invalid plan payload")
		return
	}

	result, err := h.playerService.CompleteQuest(c.Request.Context(), username, &req.Plan)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to complete quest")
		}
		return
	}

	c.JSON(http.StatusOK, CompletePlanResponse{
		Player:       result.Player,
		Session:      result.Session,
		Notification: mapEventToNotification(result.Event),
		XPAwarded:    req.Plan.XPReward,
	})
}

// Alternatives returns up to four swap options for an exercise. Empty when
// the generation backend is offline.
func (h *PlanHandler) Alternatives(c *gin.Context) {
	var req AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	alternatives, err := h.planService.ExerciseAlternatives(c.Request.Context(), req.ExerciseName, req.MuscleContext)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch alternatives")
		return
	}
	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}
