package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trialboard/internal/handler"
	"trialboard/internal/model"
	"trialboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const trialID = "6f1c2d0e-3b7a-4c55-9a8e-0d2f4b1e7c90"

func testTrial() *model.Trial {
	return &model.Trial{
		ID:        trialID,
		Title:     "PH-301",
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func setupTrialRouter() (*gin.Engine, *MockTrialRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	repo := new(MockTrialRepository)
	h := handler.NewTrialHandler(repo)

	r.POST("/trials", h.Create)
	r.GET("/trials", h.GetAll)
	r.GET("/trials/:id", h.GetByID)
	return r, repo
}

func TestTrialCreate_Success(t *testing.T) {
	// Arrange
	router, repo := setupTrialRouter()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Trial) bool {
		return tr.Title == "PH-301"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Trial).ID = trialID
	}).Return(nil)

	body, _ := json.Marshal(handler.TrialRequest{Title: "PH-301", Description: "Phase III"})
	req, _ := http.NewRequest("POST", "/trials", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var out handler.TrialResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, trialID, out.ID)
	assert.Equal(t, "Phase III", out.Description)
	repo.AssertExpectations(t)
}

func TestTrialCreate_MissingTitle(t *testing.T) {
	// Arrange
	router, repo := setupTrialRouter()
	req, _ := http.NewRequest("POST", "/trials", bytes.NewBufferString(`{"description":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTrialGetAll(t *testing.T) {
	// Arrange
	router, repo := setupTrialRouter()
	repo.On("List", mock.Anything).Return([]model.Trial{*testTrial()}, nil)

	req, _ := http.NewRequest("GET", "/trials", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var out []handler.TrialResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "2024-03-01T09:00:00Z", out[0].CreatedAt)
}

func TestTrialGetByID_NotFound(t *testing.T) {
	// Arrange
	router, repo := setupTrialRouter()
	repo.On("GetByID", mock.Anything, trialID).Return(nil, repository.ErrTrialNotFound)

	req, _ := http.NewRequest("GET", "/trials/"+trialID, nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestTrialGetByID_InvalidID(t *testing.T) {
	// Arrange
	router, repo := setupTrialRouter()
	req, _ := http.NewRequest("GET", "/trials/not-a-uuid", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTrialGetByID_DBError(t *testing.T) {
	// Arrange
	router, repo := setupTrialRouter()
	repo.On("GetByID", mock.Anything, trialID).Return(nil, errors.New("connection refused"))

	req, _ := http.NewRequest("GET", "/trials/"+trialID, nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
