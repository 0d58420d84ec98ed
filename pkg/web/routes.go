// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/SentinelBotGo/pkg/config"
	"github.com/PancyStudios/SentinelBotGo/pkg/database"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	moderrors "github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", s.statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/stats", s.statsHandler)
		api.GET("/guilds/:id/policy", s.guildPolicyHandler)
		api.GET("/audit/stream", s.stream.Handler())
	}
}

// statusHandler returns the bot and persistence status
func (s *Server) statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	guilds := 0
	if client != nil {
		botOnline = client.IsReady()
		guilds = client.GuildCount()
	}

	backend := gin.H{
		"backend": config.Get().PolicyBackend,
	}
	if config.Get().UsesMongo() {
		dbStatus, dbOnline := database.Get().GetStatus()
		backend["status"] = dbStatus
		backend["isOnline"] = dbOnline
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"persistence": backend,
		"bot": gin.H{
			"isOnline": botOnline,
			"guilds":   guilds,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "SentinelBot Go is running",
	})
}

// statsHandler exposes the engine's decision counters
func (s *Server) statsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"decisions":     s.mod.Snapshot(),
		"activeWindows": s.mod.Rates().ActiveWindows(),
		"trackedGuilds": s.mod.Store().GuildCount(),
	})
}

// guildPolicyHandler returns the moderation policy of one guild.
// It reads through Peek, never Get: this endpoint is unauthenticated and
// must not create or persist anything for ids it has never seen.
func (s *Server) guildPolicyHandler(c *gin.Context) {
	guildID := c.Param("id")

	p, err := s.mod.Store().Peek(guildID)
	if err != nil {
		if moderrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "Ese servidor no tiene política registrada.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}
