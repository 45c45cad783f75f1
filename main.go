package main

import (
	"context"
	"log"
	"volley/auth"
	"volley/config"
	"volley/database"
	"volley/database/entities"
	"volley/handlers"
	"volley/live"
	"volley/stats"
	"volley/utils"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		utils.LogFatal("Failed to load config: %v", err)
	}

	db, err := database.Init(cfg.DatabaseDSN)
	if err != nil {
		utils.LogFatal("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.AutoMigrate(&entities.Account{}, &entities.Player{}, &entities.PlayerStat{}, &entities.TeamStat{}); err != nil {
		utils.LogFatal("Failed to migrate database: %v", err)
	}
	store := database.NewGormStore(db)

	hub := live.NewHub()
	var publisher live.Publisher = hub
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		relay := live.NewRedisRelay(rdb, hub)
		go func() {
			if err := relay.Run(context.Background()); err != nil && err != context.Canceled {
				utils.LogError("Redis relay stopped: %v", err)
			}
		}()
		publisher = relay
		utils.LogWithTimestamp(color.BlueString, "Relaying live updates through Redis at %s", cfg.RedisAddr)
	}

	if cfg.Verbose {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(&handlers.API{
		Stats: stats.New(store, publisher),
		Auth:  auth.New(store, cfg.JWTSecret, cfg.TokenTTL),
		Hub:   hub,
	})

	utils.LogWithTimestamp(color.BlueString, "%s", "VolleyStats started on "+cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		utils.LogFatal("Error starting HTTP server: %v", err)
	}
}
