package api

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"systemfit/leveling-app/internal/service"
)

// ChatHandler serves the System chat surface.
type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// --- Request/Response Structs ---

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type AnalyzeImageRequest struct {
	// Image is base64-encoded JPEG data.
	Image  string `json:"image" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

type VisualizeRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// --- Handler Methods ---

func (h *ChatHandler) Chat(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	reply, err := h.chatService.Chat(c.Request.Context(), username, req.Message)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Chat request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (h *ChatHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.chatService.SearchKnowledge(c.Request.Context(), req.Query)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Search request failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ChatHandler) AnalyzeImage(c *gin.Context) {
	var req AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Image must be base64-encoded")
		return
	}

	analysis, err := h.chatService.AnalyzeImage(c.Request.Context(), image, req.Prompt)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Image analysis failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (h *ChatHandler) Visualize(c *gin.Context) {
	var req VisualizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	url, err := h.chatService.Visualize(c.Request.Context(), req.Subject)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Visualization failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url, "available": url != ""})
}

func (h *ChatHandler) ClearHistory(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get username from token")
		return
	}

	if err := h.chatService.ClearHistory(c.Request.Context(), username); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear history")
		return
	}
	c.Status(http.StatusNoContent)
}
