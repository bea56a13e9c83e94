package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/service"
)

// Handler handles the visitor-facing conversation API
type Handler struct {
	conversationService *service.ConversationService
	proposalService     *service.ProposalService
	touchpointService   *service.TouchpointService
}

// NewHandler creates a new chat handler
func NewHandler(
	conversationService *service.ConversationService,
	proposalService *service.ProposalService,
	touchpointService *service.TouchpointService,
) *Handler {
	return &Handler{
		conversationService: conversationService,
		proposalService:     proposalService,
		touchpointService:   touchpointService,
	}
}

// RegisterRoutes registers the public routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat/send", h.SendTurn)
	r.GET("/chat/sessions/:id", h.GetSession)
	r.GET("/chat/sessions/:id/transcript", h.GetTranscript)
	r.POST("/chat/sessions/:id/proposal", h.GenerateProposal)
}

// SendTurn accepts one visitor message and returns the persona reply
func (h *Handler) SendTurn(c *gin.Context) {
	var req domain.SendTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.conversationService.SendTurn(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "a reply is already in flight for this session"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty message or unknown agent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.conversationService.Session(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"state":   h.conversationService.State(id),
	})
}

func (h *Handler) GetTranscript(c *gin.Context) {
	id := c.Param("id")
	turns, err := h.conversationService.Transcript(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": id, "turns": turns})
}

// GenerateProposal synthesizes a structured proposal from the session. A
// downstream failure is not an API error; the client receives an explicit
// unavailable marker and the conversation stays usable.
func (h *Handler) GenerateProposal(c *gin.Context) {
	id := c.Param("id")

	var req domain.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.proposalService.SynthesizeForSession(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "session has no resolvable agent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if doc == nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": true, "proposal": doc})
}

// ResolveScan records a physical scan and hands back the agent binding
func (h *Handler) ResolveScan(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	resolution, err := h.touchpointService.ResolveScan(c.Request.Context(), trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tracking id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolution)
}
