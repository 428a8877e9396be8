package main

import (
	"log"
	"net/http"

	"social-spark/cmd/internal/logger"
	"social-spark/cmd/web/router"
	"social-spark/config"
)

// @title           Social Spark API
// @version         1.0
// @description     Generate social media post ideas with a local Ollama model
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	r, err := router.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	logger.InfoWithFields("starting web server", logger.Fields{
		"addr":         cfg.Server.Addr,
		"ollama_url":   cfg.Ollama.BaseURL,
		"ollama_model": cfg.Ollama.Model,
	})
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
