package handler

import (
	"net/http"

	"trialboard/internal/events"

	"github.com/gin-gonic/gin"
)

// SectionHandler relays a client's current sub-view of a trial to every
// subscriber, for breadcrumb and highlight sync.
type SectionHandler struct {
	trials TrialRepository
	pub    events.Publisher
}

func NewSectionHandler(trials TrialRepository, pub events.Publisher) *SectionHandler {
	return &SectionHandler{trials: trials, pub: pub}
}

type SectionRequest struct {
	Section string `json:"section" binding:"required,max=64"`
}

func (h *SectionHandler) Publish(c *gin.Context) {
	trial, ok := loadTrial(c, h.trials)
	if !ok {
		return
	}

	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	h.pub.Publish(events.Event{
		Topic:   events.TopicSectionChanged,
		TrialID: trial.ID,
		Payload: gin.H{"section": req.Section},
	})
	c.JSON(http.StatusAccepted, gin.H{"section": req.Section})
}
