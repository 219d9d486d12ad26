package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/http/response"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/apierr"
)

const maxMatchLimit = 100

type GraphHandler struct {
	graph GraphReader
}

func NewGraphHandler(graph GraphReader) *GraphHandler {
	return &GraphHandler{graph: graph}
}

// GET /api/stats
func (h *GraphHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	dist, err := h.graph.NodeDistribution(ctx)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "graph_unavailable", err)
		return
	}
	rels, err := h.graph.CountRelationships(ctx)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "graph_unavailable", err)
		return
	}
	var total int64
	for _, lc := range dist {
		total += lc.Count
	}
	response.RespondOK(c, gin.H{
		"nodes":              dist,
		"node_count":         total,
		"relationship_count": rels,
	})
}

type matchRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Limit    int      `json:"limit"`
}

// POST /api/diseases/match
func (h *GraphHandler) Match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Limit < 0 || req.Limit > maxMatchLimit {
		response.RespondAPIError(c, apierr.BadRequest("invalid_limit", errors.New("limit must be between 0 and 100")), "invalid_limit")
		return
	}
	matches, err := h.graph.MatchDiseasesBySymptoms(c.Request.Context(), req.Symptoms, req.Limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "graph_unavailable", err)
		return
	}
	response.RespondOK(c, gin.H{"matches": matches})
}

// GET /api/diseases/:name
func (h *GraphHandler) Profile(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	profile, ok, err := h.graph.DiseaseProfile(c.Request.Context(), name)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "graph_unavailable", err)
		return
	}
	if !ok {
		response.RespondAPIError(c, apierr.NotFound("disease_not_found", errors.New("no disease named "+name)), "disease_not_found")
		return
	}
	response.RespondOK(c, gin.H{"disease": profile})
}
