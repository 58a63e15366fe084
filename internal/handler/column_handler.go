package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	repo ColumnRepository
}

func NewColumnHandler(repo ColumnRepository) *ColumnHandler {
	return &ColumnHandler{repo: repo}
}

type ColumnResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Position int    `json:"position"`
}

// GetAll returns the fixed, ordered workflow columns.
func (h *ColumnHandler) GetAll(c *gin.Context) {
	columns, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	out := make([]ColumnResponse, 0, len(columns))
	for _, col := range columns {
		out = append(out, ColumnResponse{ID: col.ID, Name: col.Name, Color: col.Color, Position: col.Position})
	}
	c.JSON(http.StatusOK, out)
}
