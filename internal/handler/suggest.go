package handler

import (
	"net/http"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/model"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// SuggestHandler handles department suggestion HTTP requests. Only wired
// when the PostgreSQL backend is active; otherwise the routes answer 503.
type SuggestHandler struct {
	suggest *service.SuggestService
}

// NewSuggestHandler creates a new suggestion handler
func NewSuggestHandler(suggest *service.SuggestService) *SuggestHandler {
	return &SuggestHandler{suggest: suggest}
}

// Suggest handles POST /api/v1/specialties/suggest
func (h *SuggestHandler) Suggest(c *gin.Context) {
	if h.suggest == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Suggestions require the PostgreSQL directory backend"})
		return
	}

	var req model.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	suggestions, err := h.suggest.Suggest(c.Request.Context(), req.Text, req.TopK)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Suggestion failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SuggestResponse{Suggestions: suggestions})
}

// UpsertEmbeddings handles POST /api/v1/specialties/embeddings
func (h *SuggestHandler) UpsertEmbeddings(c *gin.Context) {
	if h.suggest == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Suggestions require the PostgreSQL directory backend"})
		return
	}

	var req model.DepartmentEmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(req.Departments) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No departments provided"})
		return
	}

	success, errs := h.suggest.UpsertDepartments(c.Request.Context(), req.Departments)

	response := model.DepartmentEmbeddingResponse{
		Success: success,
		Failed:  len(req.Departments) - success,
		Errors:  errs,
	}

	if len(errs) > 0 {
		c.JSON(http.StatusPartialContent, response)
	} else {
		c.JSON(http.StatusOK, response)
	}
}
