package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/progression"
	"systemfit/leveling-app/internal/service"
)

// PlayerHandler serves the status window: player state, history, skills and
// the training-focus/gender toggles.
type PlayerHandler struct {
	playerService service.PlayerService
	planService   service.PlanService
}

func NewPlayerHandler(playerService service.PlayerService, planService service.PlanService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, planService: planService}
}

// --- Request/Response Structs ---

type SetFocusRequest struct {
	Focus domain.TrainingFocus `json:"focus" binding:"required,oneof=hypertrophy strength"`
}

type SetGenderRequest struct {
	Gender domain.Gender `json:"gender" binding:"required,oneof=male female"`
}

// NotificationResponse is the rendered form of a progression event. The
// client shows it and expires it on its own timer.
type NotificationResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

type PlayerResponse struct {
	Player       *domain.Player        `json:"player"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

type SkillResponse struct {
	domain.CalisthenicsSkill
	Unlocked bool `json:"unlocked"`
}

func mapEventToNotification(event progression.Event) *NotificationResponse {
	switch event.Kind {
	case progression.EventLevelUp:
		return &NotificationResponse{Kind: "level_up", Message: "LEVEL UP!"}
	case progression.EventClassChanged:
		return &NotificationResponse{Kind: "class_changed", Message: fmt.Sprintf("CLASSE ATUALIZADA: %s", event.NewClass)}
	case progression.EventEliteUnlocked:
		return &NotificationResponse{Kind: "elite_unlocked", Message: "MODO ELITE DESBLOQUEADO"}
	default:
		return nil
	}
}

// --- Handler Methods ---

// GetMe returns the authenticated player's full state.
func (h *PlayerHandler) GetMe(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
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
	c.JSON(http.StatusOK, PlayerResponse{Player: player})
}

// GetHistory returns the workout history, most recent first.
func (h *PlayerHandler) GetHistory(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
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
	c.JSON(http.StatusOK, gin.H{"history": player.WorkoutHistory})
}

// SetFocus switches the training focus.
func (h *PlayerHandler) SetFocus(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	var req SetFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	player, err := h.playerService.SetTrainingFocus(c.Request.Context(), username, req.Focus)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update training focus")
		}
		return
	}
	c.JSON(http.StatusOK, PlayerResponse{Player: player})
}

// SetGender updates the presentation gender.
func (h *PlayerHandler) SetGender(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	var req SetGenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	player, err := h.playerService.SetGender(c.Request.Context(), username, req.Gender)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update gender")
		}
		return
	}
	c.JSON(http.StatusOK, PlayerResponse{Player: player})
}

// GetSkills returns the full calisthenics catalog annotated with the
// player's unlock state.
func (h *PlayerHandler) GetSkills(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
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

	skills := make([]SkillResponse, 0, len(domain.CalisthenicsProgression))
	for _, skill := range domain.CalisthenicsProgression {
		skills = append(skills, SkillResponse{
			CalisthenicsSkill: skill,
			Unlocked:          player.HasSkill(skill.ID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// MasterSkill marks a skill as mastered, awarding XP and unlocking the next
// tier of its category.
func (h *PlayerHandler) MasterSkill(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	skillID := c.Param("id")
	player, event, err := h.playerService.MasterSkill(c.Request.Context(), username, skillID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSkill):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSkillLocked):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrPlayerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to master skill")
		}
		return
	}

	c.JSON(http.StatusOK, PlayerResponse{
		Player:       player,
		Notification: mapEventToNotification(event),
	})
}

// GetSkillAnalysis fetches the AI technical breakdown for a catalog skill.
func (h *PlayerHandler) GetSkillAnalysis(c *gin.Context) {
	skill := domain.SkillByID(c.Param("id"))
	if skill == nil {
		abortWithError(c, http.StatusNotFound, "unknown skill")
		return
	}

	analysis, err := h.planService.SkillAnalysis(c.Request.Context(), skill.Name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to analyze skill")
		return
	}
	if analysis == nil {
		// Offline: the client renders its own placeholder.
		c.JSON(http.StatusOK, gin.H{"analysis": nil, "offline": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis, "offline": false})
}

// GetSplits returns the static split catalog.
func (h *PlayerHandler) GetSplits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"splits": domain.WorkoutSplits})
}
