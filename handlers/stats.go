package handlers

import (
	"volley/stats"
	"volley/utils"

	"github.com/gin-gonic/gin"
)

func (api *API) GetPlayers(c *gin.Context) {
	players, err := api.Stats.PlayersForGame(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		utils.LogError("Failed to get players: %v", err)
		c.JSON(500, gin.H{"err": "Failed to get players"})
		return
	}
	c.JSON(200, players)
}

func (api *API) GetTeamStats(c *gin.Context) {
	stat, err := api.Stats.TeamStatsForGame(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		utils.LogError("Failed to get team stats: %v", err)
		c.JSON(500, gin.H{"err": "Failed to get team stats"})
		return
	}
	c.JSON(200, stat)
}

func (api *API) GetGameStats(c *gin.Context) {
	rows, err := api.Stats.StatsForGame(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		utils.LogError("Failed to get game stats: %v", err)
		c.JSON(500, gin.H{"err": "Failed to get game stats"})
		return
	}
	c.JSON(200, rows)
}

func (api *API) PostPlayerStat(c *gin.Context) {
	var delta stats.PlayerStatDelta
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(400, gin.H{"err": err.Error()})
		return
	}

	stat, err := api.Stats.RecordPlayerStat(c.Request.Context(), c.Param("gameId"), c.Param("playerId"), delta)
	if err != nil {
		utils.LogError("Failed to record player stat: %v", err)
		c.JSON(500, gin.H{"err": "Failed to record player stat"})
		return
	}
	c.JSON(200, stat)
}

func (api *API) PostTeamStat(c *gin.Context) {
	var delta stats.TeamStatDelta
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(400, gin.H{"err": err.Error()})
		return
	}

	stat, err := api.Stats.RecordTeamStat(c.Request.Context(), c.Param("gameId"), delta)
	if err != nil {
		utils.LogError("Failed to record team stat: %v", err)
		c.JSON(500, gin.H{"err": "Failed to record team stat"})
		return
	}
	c.JSON(200, stat)
}

func (api *API) GetPlayerReport(c *gin.Context) {
	report, err := api.Stats.PlayerReport(c.Request.Context(), c.Param("gameId"), c.Param("playerId"))
	if err != nil {
		utils.LogError("Failed to build player report: %v", err)
		c.JSON(500, gin.H{"err": "Failed to build player report"})
		return
	}
	c.JSON(200, report)
}
