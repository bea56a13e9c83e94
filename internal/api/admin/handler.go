package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/touchpoint-ai/touchpoint/internal/domain"
	"github.com/touchpoint-ai/touchpoint/internal/service"
)

// Handler handles admin API requests
type Handler struct {
	agentService      *service.AgentService
	touchpointService *service.TouchpointService
	workspaceService  *service.WorkspaceService
	crmService        *service.CRMService
}

// NewHandler creates a new admin handler
func NewHandler(
	agentService *service.AgentService,
	touchpointService *service.TouchpointService,
	workspaceService *service.WorkspaceService,
	crmService *service.CRMService,
) *Handler {
	return &Handler{
		agentService:      agentService,
		touchpointService: touchpointService,
		workspaceService:  workspaceService,
		crmService:        crmService,
	}
}

// RegisterRoutes registers admin routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	agents := r.Group("/agents")
	{
		agents.POST("", h.CreateAgent)
		agents.GET("", h.ListAgents)
		agents.GET("/:id", h.GetAgent)
		agents.DELETE("/:id", h.PurgeAgent)
	}

	touchpoints := r.Group("/touchpoints")
	{
		touchpoints.POST("", h.DeployTouchpoint)
		touchpoints.GET("", h.ListTouchpoints)
		touchpoints.GET("/:id", h.GetTouchpoint)
		touchpoints.PUT("/:id/active", h.SetTouchpointActive)
		touchpoints.DELETE("/:id", h.DeleteTouchpoint)
	}

	crm := r.Group("/crm")
	{
		crm.GET("/connections", h.ListCRMConnections)
		crm.POST("/connect", h.ConnectCRM)
		crm.DELETE("/disconnect/:provider_id", h.DisconnectCRM)
	}

	r.GET("/settings", h.GetSettings)
	r.PUT("/settings", h.UpdateSettings)
	r.GET("/stats", h.GetStats)
	r.POST("/translate", h.Translate)
}

// Agent handlers

func (h *Handler) CreateAgent(c *gin.Context) {
	var req domain.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.CreateAgent(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrPlanLimit) {
			c.JSON(http.StatusForbidden, gin.H{"error": "plan limit reached: upgrade to deploy more agents"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, agent)
}

func (h *Handler) ListAgents(c *gin.Context) {
	agents, err := h.agentService.ListAgents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

func (h *Handler) GetAgent(c *gin.Context) {
	id := c.Param("id")
	agent, err := h.agentService.GetAgent(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if agent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		return
	}

	c.JSON(http.StatusOK, agent)
}

func (h *Handler) PurgeAgent(c *gin.Context) {
	id := c.Param("id")
	if err := h.agentService.PurgeAgent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "agent purged"})
}

// Touchpoint handlers

func (h *Handler) DeployTouchpoint(c *gin.Context) {
	var req domain.CreateTouchpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tp, err := h.touchpointService.Deploy(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlanLimit):
			c.JSON(http.StatusForbidden, gin.H{"error": "plan limit reached: upgrade to deploy more touchpoints"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown surface type or agent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, tp)
}

func (h *Handler) ListTouchpoints(c *gin.Context) {
	touchpoints, err := h.touchpointService.ListTouchpoints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"touchpoints": touchpoints})
}

func (h *Handler) GetTouchpoint(c *gin.Context) {
	id := c.Param("id")
	tp, err := h.touchpointService.GetTouchpoint(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "touchpoint not found"})
		return
	}

	c.JSON(http.StatusOK, tp)
}

func (h *Handler) SetTouchpointActive(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.touchpointService.SetActive(c.Request.Context(), id, req.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "touchpoint updated"})
}

func (h *Handler) DeleteTouchpoint(c *gin.Context) {
	id := c.Param("id")
	if err := h.touchpointService.DeleteTouchpoint(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "touchpoint deleted"})
}

// CRM handlers. CRM sync is gated on the Professional tier here at the
// boundary; the conversation core never consults subscription state.

func (h *Handler) ListCRMConnections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connections": h.crmService.List(c.Request.Context())})
}

func (h *Handler) ConnectCRM(c *gin.Context) {
	settings, err := h.workspaceService.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !domain.PlanHasFeature(settings.Subscription, "CRM Sync") {
		c.JSON(http.StatusForbidden, gin.H{"error": "CRM Sync is a Professional feature"})
		return
	}

	var req domain.CRMConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.crmService.Connect(c.Request.Context(), req.ProviderID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown CRM provider"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DisconnectCRM(c *gin.Context) {
	providerID := c.Param("provider_id")
	if err := h.crmService.Disconnect(c.Request.Context(), providerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Settings and stats handlers

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.workspaceService.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req domain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.workspaceService.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown subscription plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.workspaceService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Translate(c *gin.Context) {
	var req struct {
		Text     string `json:"text" binding:"required"`
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	translated := h.workspaceService.TranslateContent(c.Request.Context(), req.Text, req.Language)
	c.JSON(http.StatusOK, gin.H{"text": translated})
}
