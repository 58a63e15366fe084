package handler

import (
	"errors"
	"net/http"
	"time"

	"trialboard/internal/model"
	"trialboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrialHandler struct {
	repo TrialRepository
}

func NewTrialHandler(repo TrialRepository) *TrialHandler {
	return &TrialHandler{repo: repo}
}

// TrialRequest is the body of a trial creation.
type TrialRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type TrialResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func newTrialResponse(t *model.Trial) TrialResponse {
	return TrialResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func (h *TrialHandler) Create(c *gin.Context) {
	var req TrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	trial := &model.Trial{Title: req.Title, Description: req.Description}
	if err := h.repo.Create(c.Request.Context(), trial); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trial"})
		return
	}

	c.JSON(http.StatusCreated, newTrialResponse(trial))
}

func (h *TrialHandler) GetAll(c *gin.Context) {
	trials, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trials"})
		return
	}

	out := make([]TrialResponse, 0, len(trials))
	for i := range trials {
		out = append(out, newTrialResponse(&trials[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TrialHandler) GetByID(c *gin.Context) {
	trial, ok := loadTrial(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newTrialResponse(trial))
}

// loadTrial fetches the trial named by the :id path parameter and writes the
// error response itself when it cannot.
func loadTrial(c *gin.Context, repo TrialRepository) (*model.Trial, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trial ID format"})
		return nil, false
	}

	trial, err := repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTrialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trial not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trial"})
		return nil, false
	}
	return trial, true
}
