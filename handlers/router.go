package handlers

import (
	"volley/auth"
	"volley/live"
	"volley/stats"

	"github.com/gin-gonic/gin"
)

// API bundles the collaborators the HTTP layer needs.
type API struct {
	Stats *stats.Service
	Auth  *auth.Service
	Hub   *live.Hub
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(api *API) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", api.Login)
		authGroup.POST("/logout", api.Logout)
	}

	games := router.Group("/api/games")
	{
		games.GET("/:gameId/players", api.GetPlayers)
		games.GET("/:gameId/team-stats", api.GetTeamStats)
		games.GET("/:gameId/stats", api.GetGameStats)
		games.POST("/:gameId/players/:playerId/stats", api.PostPlayerStat)
		games.POST("/:gameId/team-stats", api.PostTeamStat)
		games.GET("/:gameId/reports/player/:playerId", api.GetPlayerReport)
	}

	router.GET("/ws/games/:gameId", api.HandleGameSocket)

	return router
}
