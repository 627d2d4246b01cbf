// Package server exposes the prayer API over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/abdulachik/selah/internal/composer"
	"github.com/abdulachik/selah/internal/health"
	"github.com/abdulachik/selah/internal/library"
	"github.com/abdulachik/selah/internal/logger"
	"github.com/abdulachik/selah/internal/voice"
)

// Composer produces prayers. *composer.Composer satisfies it.
type Composer interface {
	Compose(ctx context.Context, req composer.Request) (*composer.Result, error)
}

// Config holds the server's collaborators. Voices and Health are optional.
type Config struct {
	Composer              Composer
	Library               *library.Library
	Voices                *voice.Service
	Health                *health.Health
	Logger                *logger.Logger
	CORSOrigins           []string
	GenerateRatePerMinute int // 0 disables limiting
}

// Server is the HTTP API.
type Server struct {
	Engine *gin.Engine

	composer Composer
	library  *library.Library
	voices   *voice.Service
	health   *health.Health
	log      *logger.Logger
}

// New builds the router.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	lib := cfg.Library
	if lib == nil {
		lib = library.Default()
	}
	h := cfg.Health
	if h == nil {
		h = health.New()
	}

	s := &Server{
		composer: cfg.Composer,
		library:  lib,
		voices:   cfg.Voices,
		health:   h,
		log:      log,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(CORS(cfg.CORSOrigins))

	r.GET("/healthcheck", s.healthCheck)

	api := r.Group("/api")
	{
		generate := []gin.HandlerFunc{}
		if cfg.GenerateRatePerMinute > 0 {
			generate = append(generate, RateLimit(perMinute(cfg.GenerateRatePerMinute)))
		}
		api.POST("/generate-prayer", append(generate, s.generatePrayer)...)

		api.GET("/catalog", s.catalog)

		api.GET("/prayers", s.listPrayers)
		api.GET("/prayers/random", s.randomPrayers)
		api.GET("/prayers/:id", s.getPrayer)

		api.GET("/voices/presets", s.voicePresets)
		if s.voices != nil {
			api.GET("/voices", s.listVoices)
		api.GET("/voices/:id", s.getVoice)
			api.PUT("/voices", s.saveVoice)
			api.DELETE("/voices/:id", s.deleteVoice)
		}
	}

	s.Engine = r
	return s
}

// HTTPServer returns an http.Server serving the router on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func perMinute(n int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}
