package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/arlebowski/Tiny-Time-sub003/loadtest/internal/stub"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	storage := stub.NewActivityStorage()
	h := stub.NewHandler(storage)

	r := gin.Default()
	r.GET("/health", h.HandleHealth)
	r.POST("/seed", h.HandleSeed)
	r.POST("/reset", h.HandleReset)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/feedings", h.HandleListFeedings)
		v1.GET("/nursing-sessions", h.HandleListNursingSessions)
		v1.GET("/solids-sessions", h.HandleListSolidsSessions)
		v1.GET("/sleep-sessions", h.HandleListSleepSessions)
		v1.GET("/kid", h.HandleGetKid)
	}

	slog.Info("starting activity API stub", slog.String("port", port))

	if err := r.Run(":" + port); err != nil {
		slog.Error("stub server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
