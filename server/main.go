package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nestorgt/sudoku-validator/config"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := newEngine().Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}

// newEngine wires the routes; tests drive it directly.
func newEngine() *gin.Engine {
	e := gin.Default()
	v1 := e.Group("/api").
		Group("/v1")

	validateHandler := NewValidateHandler()
	v1.POST("/validate/board", validateHandler.Board)
	v1.POST("/validate/group", validateHandler.Group)

	return e
}
