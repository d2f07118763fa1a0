package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles doctor search HTTP requests
type SearchHandler struct {
	directory *service.DirectoryService
	triage    *service.TriageService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(directory *service.DirectoryService, triage *service.TriageService) *SearchHandler {
	return &SearchHandler{
		directory: directory,
		triage:    triage,
	}
}

// Search handles POST /api/v1/doctors/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.directory.Query(c.Request.Context(), req.Specialty, req.Location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetDoctor handles GET /api/v1/doctors/:id
func (h *SearchHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	doctor, err := h.directory.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// Triage handles POST /api/v1/triage — classify the concern, then search
func (h *SearchHandler) Triage(c *gin.Context) {
	var req model.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.UserConcern.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide at least one form of input about your medical concern"})
		return
	}

	response, err := h.triage.Triage(c.Request.Context(), req.UserConcern, req.Location)
	if err != nil {
		if errors.Is(err, service.ErrClassificationUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Triage failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Triage failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
