package main

import (
	"log"
	"net/http"

	httpapi "reversi/internal/api/http"
	"reversi/internal/api/ws"
	"reversi/internal/config"
	"reversi/internal/match"
	"reversi/internal/store"

	// swagger packages
	_ "reversi/docs"

	"github.com/gin-gonic/gin"
)

// @title Reversi Engine API
// @version 1.0
// @description REST API for an 8x8 Othello/Reversi engine with a minimax opponent (Go + Gin)
// @contact.name Backend Team
// @contact.email backend@yourcompany.com
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	mgr := match.NewManager(mem, cfg)
	hub := ws.NewHub(mgr)
	mgr.SetBroadcaster(hub)
	r := httpapi.NewRouter(mgr, hub)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
