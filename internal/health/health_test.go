package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_SetHealthy(t *testing.T) {
	h := New()

	h.SetHealthy("test", "all good")

	status := h.Get("test")
	require.NotNil(t, status)
	assert.True(t, status.Healthy)
	assert.Equal(t, "all good", status.Message)
	assert.Nil(t, status.LastError)
	assert.WithinDuration(t, time.Now(), status.LastCheck, time.Second)
	assert.WithinDuration(t, time.Now(), status.LastSuccess, time.Second)
}

func TestHealth_SetUnhealthy(t *testing.T) {
	h := New()
	h.SetHealthy("test", "ok")

	err := assert.AnError
	h.SetUnhealthy("test", err)

	status := h.Get("test")
	assert.False(t, status.Healthy)
	assert.Equal(t, err, status.LastError)
	assert.Equal(t, err.Error(), status.Message)
	assert.False(t, status.LastSuccess.IsZero(), "last success survives a failure")
}

func TestHealth_Get_NotFound(t *testing.T) {
	assert.Nil(t, New().Get("nonexistent"))
}

func TestHealth_Get_ReturnsCopy(t *testing.T) {
	h := New()
	h.SetHealthy("db", "ok")

	h.Get("db").Healthy = false
	assert.True(t, h.Get("db").Healthy)
}

func TestHealth_All(t *testing.T) {
	h := New()

	h.SetHealthy("comp1", "ok")
	h.SetHealthy("comp2", "ok")
	h.SetUnhealthy("comp3", assert.AnError)

	statuses := h.All()
	assert.Len(t, statuses, 3)
	assert.True(t, statuses["comp1"].Healthy)
	assert.True(t, statuses["comp2"].Healthy)
	assert.False(t, statuses["comp3"].Healthy)
}

func TestHealth_Healthy(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		h := New()
		h.SetHealthy("comp1", "ok")
		h.SetHealthy("comp2", "ok")
		assert.True(t, h.Healthy())
	})

	t.Run("one unhealthy", func(t *testing.T) {
		h := New()
		h.SetHealthy("comp1", "ok")
		h.SetUnhealthy("comp2", assert.AnError)
		assert.False(t, h.Healthy())
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, New().Healthy())
	})
}

func TestHealth_Check(t *testing.T) {
	h := New()
	down := errors.New("disk gone")

	h.Register(Database, func(context.Context) error { return down })
	h.Register(GeneratorConfig, func(context.Context) error { return nil })

	h.Check(context.Background())

	assert.False(t, h.Healthy())
	assert.Equal(t, "disk gone", h.Get(Database).Message)
	assert.True(t, h.Get(GeneratorConfig).Healthy)

	h.Register(Database, func(context.Context) error { return nil })
	h.Check(context.Background())
	assert.True(t, h.Healthy())
}
