package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// ClassifyHandler handles specialty classification HTTP requests
type ClassifyHandler struct {
	classifier *service.SpecialtyClassifier
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifier *service.SpecialtyClassifier) *ClassifyHandler {
	return &ClassifyHandler{classifier: classifier}
}

// Classify handles POST /api/v1/classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req model.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Precondition of the classifier: at least one populated field
	if req.UserConcern.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide at least one form of input about your medical concern"})
		return
	}

	startTime := time.Now()
	specialty, err := h.classifier.Classify(c.Request.Context(), req.UserConcern)
	if err != nil {
		if errors.Is(err, service.ErrClassificationUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Classification failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Classification failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ClassifyResponse{
		Specialty: specialty,
		Took:      time.Since(startTime).Milliseconds(),
	})
}
