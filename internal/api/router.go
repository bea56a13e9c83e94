package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/api/admin"
	"github.com/touchpoint-ai/touchpoint/internal/api/chat"
	"github.com/touchpoint-ai/touchpoint/internal/api/middleware"
	"github.com/touchpoint-ai/touchpoint/internal/config"
	"github.com/touchpoint-ai/touchpoint/internal/service"
)

// NewRouter creates the HTTP router with all routes configured
func NewRouter(
	cfg *config.Config,
	agentService *service.AgentService,
	touchpointService *service.TouchpointService,
	conversationService *service.ConversationService,
	proposalService *service.ProposalService,
	workspaceService *service.WorkspaceService,
	crmService *service.CRMService,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	chatHandler := chat.NewHandler(conversationService, proposalService, touchpointService)

	// Scan activation lives at the root so printed QR codes stay short
	r.GET("/active/:tracking_id", chatHandler.ResolveScan)

	// Public conversation API
	public := r.Group("/api/public")
	chatHandler.RegisterRoutes(public)

	// Admin API (API key protected)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.Auth(cfg.Admin.APIKey))
	adminHandler := admin.NewHandler(agentService, touchpointService, workspaceService, crmService)
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
