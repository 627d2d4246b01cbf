package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdulachik/selah/internal/catalog"
	"github.com/abdulachik/selah/internal/composer"
	"github.com/abdulachik/selah/internal/library"
	"github.com/abdulachik/selah/internal/voice"
)

const generateFailed = "Failed to generate prayer. Please try again."

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func (s *Server) generatePrayer(c *gin.Context) {
	var req composer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// A client disconnect does not abort an in-flight generation.
	result, err := s.composer.Compose(context.WithoutCancel(c.Request.Context()), req)
	if err != nil {
		s.log.Error("generate prayer failed", "error", err)
		respondError(c, http.StatusInternalServerError, generateFailed)
		return
	}

	c.JSON(http.StatusOK, result)
}

type catalogResponse struct {
	Religions      []catalog.Belief `json:"religions"`
	SpiritualPaths []catalog.Belief `json:"spiritualPaths"`
	Emotions       []catalog.Option `json:"emotions"`
	Intentions     []catalog.Option `json:"intentions"`
	Tones          []catalog.Option `json:"tones"`
	Lengths        []catalog.Option `json:"lengths"`
	PrayerTypes    []catalog.Option `json:"prayerTypes"`
	Defaults       composer.Request `json:"defaults"`
}

func (s *Server) catalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		Religions:      catalog.Religions(),
		SpiritualPaths: catalog.SpiritualPaths(),
		Emotions:       catalog.Emotions(),
		Intentions:     catalog.Intentions(),
		Tones:          catalog.Tones(),
		Lengths:        catalog.Lengths(),
		PrayerTypes:    catalog.PrayerTypes(),
		Defaults:       composer.DefaultRequest(),
	})
}

func (s *Server) listPrayers(c *gin.Context) {
	prayers := s.library.Find(library.Filter{
		Search:    c.Query("q"),
		Tradition: c.Query("tradition"),
		Emotion:   c.Query("emotion"),
		Intention: c.Query("intention"),
	})
	c.JSON(http.StatusOK, gin.H{"prayers": prayers, "count": len(prayers)})
}

func (s *Server) randomPrayers(c *gin.Context) {
	n := 0
	if raw := c.Query("n"); raw != "" {
		var err error
		if n, err = strconv.Atoi(raw); err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "n must be a non-negative integer")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"prayers": s.library.Random(n)})
}

type prayerResponse struct {
	Prayer         library.Prayer   `json:"prayer"`
	TraditionLabel string           `json:"traditionLabel"`
	Related        []library.Prayer `json:"related"`
}

func (s *Server) getPrayer(c *gin.Context) {
	id := c.Param("id")
	prayer, err := s.library.Get(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "prayer not found")
		return
	}

	related, err := s.library.Related(id, library.DefaultRelated)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load related prayers")
		return
	}

	c.JSON(http.StatusOK, prayerResponse{
		Prayer:         prayer,
		TraditionLabel: catalog.TraditionLabel(prayer.Tradition),
		Related:        related,
	})
}

func (s *Server) voicePresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": voice.Presets()})
}

func (s *Server) listVoices(c *gin.Context) {
	voices, err := s.voices.List(c.Request.Context())
	if err != nil {
		s.log.Error("list voices failed", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to load voices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"voices": voices})
}

func (s *Server) getVoice(c *gin.Context) {
	v, err := s.voices.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, voice.ErrNotFound):
		respondError(c, http.StatusNotFound, "voice not found")
	case err != nil:
		s.log.Error("get voice failed", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to load voice")
	default:
		c.JSON(http.StatusOK, v)
	}
}

func (s *Server) saveVoice(c *gin.Context) {
	var v voice.Voice
	if err := c.ShouldBindJSON(&v); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.voices.Save(c.Request.Context(), v)
	if err != nil {
		if errors.Is(err, voice.ErrInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("save voice failed", "error", err, "voice_id", v.ID)
		respondError(c, http.StatusInternalServerError, "failed to save voice")
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteVoice(c *gin.Context) {
	err := s.voices.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, voice.ErrNotFound):
		respondError(c, http.StatusNotFound, "voice not found")
	case err != nil:
		s.log.Error("delete voice failed", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to delete voice")
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	s.health.Check(c.Request.Context())

	status, code := "ok", http.StatusOK
	if !s.health.Healthy() {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "components": s.health.All()})
}
