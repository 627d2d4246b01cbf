package voice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulachik/selah/internal/db"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	ctx := context.Background()
	store, err := db.NewStore(ctx, filepath.Join(t.TempDir(), "voices.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	t.Cleanup(func() { store.Close() })

	svc := NewService(store)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestPresets(t *testing.T) {
	got := Presets()
	require.Len(t, got, 6)
	assert.Equal(t, "Wise Elder", got[0].Name)
	assert.Equal(t, 0.8, got[0].Pitch)
	assert.Equal(t, "Meditative Guide", got[5].Name)
	assert.Equal(t, 0.7, got[5].Rate)

	for _, p := range got {
		assert.Equal(t, TypeCelebrity, p.Type)
		assert.NoError(t, p.Validate(), p.Name)
	}

	got[0].Name = "changed"
	assert.Equal(t, "Wise Elder", Presets()[0].Name)
}

func TestVoice_Validate(t *testing.T) {
	valid := Voice{Name: "Mine", Type: TypeRecorded, Pitch: 1, Rate: 0.85}

	tests := []struct {
		name   string
		mutate func(*Voice)
		errMsg string
	}{
		{name: "valid", mutate: func(*Voice) {}},
		{name: "blank name", mutate: func(v *Voice) { v.Name = "  " }, errMsg: "name is required"},
		{name: "bad type", mutate: func(v *Voice) { v.Type = "robot" }, errMsg: "unknown type"},
		{name: "zero pitch", mutate: func(v *Voice) { v.Pitch = 0 }, errMsg: "pitch"},
		{name: "pitch too high", mutate: func(v *Voice) { v.Pitch = 2.5 }, errMsg: "pitch"},
		{name: "max pitch ok", mutate: func(v *Voice) { v.Pitch = MaxPitch }},
		{name: "negative rate", mutate: func(v *Voice) { v.Rate = -1 }, errMsg: "rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid
			tt.mutate(&v)
			err := v.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("save assigns id and time", func(t *testing.T) {
		svc := newTestService(t)

		saved, err := svc.Save(ctx, Voice{Name: " Grandma ", Type: TypeRecorded, Pitch: 1, Rate: 0.85, Audio: []byte("wav")})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, "Grandma", saved.Name)
		assert.Equal(t, int64(1700000000000), saved.CreatedAt)

		got, err := svc.Get(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("save keeps id and upserts", func(t *testing.T) {
		svc := newTestService(t)

		v := Voice{ID: "fixed", Name: "Pastor", Type: TypeBrowser, Pitch: 0.95, Rate: 0.82, BrowserVoiceName: "Daniel", CreatedAt: 42}
		_, err := svc.Save(ctx, v)
		require.NoError(t, err)

		v.Rate = 0.9
		_, err = svc.Save(ctx, v)
		require.NoError(t, err)

		voices, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, voices, 1)
		assert.Equal(t, 0.9, voices[0].Rate)
		assert.Equal(t, "Daniel", voices[0].BrowserVoiceName)
		assert.Equal(t, int64(42), voices[0].CreatedAt)
	})

	t.Run("invalid voice not stored", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Save(ctx, Voice{Name: "x", Type: TypeBrowser, Pitch: 5, Rate: 1})
		assert.ErrorIs(t, err, ErrInvalid)

		voices, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, voices)
	})

	t.Run("get and delete missing", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Get(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, "ghost"), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc := newTestService(t)

		saved, err := svc.Save(ctx, Voice{Name: "Temp", Type: TypeBrowser, Pitch: 1, Rate: 1})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, saved.ID))

		_, err = svc.Get(ctx, saved.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
