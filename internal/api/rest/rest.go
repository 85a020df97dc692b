package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/khaihkd/tomochain-governance/internal/api/middleware"
)

// SetupRoutes registers all REST API routes on the router. Only the
// candidate name update requires authentication; everything else is public.
func SetupRoutes(router *gin.Engine, h Handler, authConfig middleware.AuthConfig) {
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/config", h.GetConfig)

		api.GET("/candidates", h.ListCandidates)
		api.GET("/candidates/:candidate", h.GetCandidate)
		api.PUT("/candidates/:candidate", middleware.Auth(authConfig), h.UpdateCandidate)
		api.GET("/candidates/:candidate/rewards", h.GetRewardHistory)

		api.POST("/owner/challenges", h.IssueChallenge)
		api.POST("/owner/challenges/verify", h.VerifyChallenge)
		api.GET("/owner/challenges/:token/signature", h.GetChallengeSignature)
	}
}
