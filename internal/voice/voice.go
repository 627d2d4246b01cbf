// Package voice manages text-to-speech voice profiles: the built-in presets
// and voices saved by users.
package voice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abdulachik/selah/internal/db"
)

// Voice types.
const (
	TypeBrowser   = "browser"
	TypeRecorded  = "recorded"
	TypeCelebrity = "celebrity"
)

// Playback bounds accepted by Save.
const (
	MaxPitch = 2.0
	MaxRate  = 10.0
)

var (
	// ErrNotFound is returned when no voice has the requested id.
	ErrNotFound = errors.New("voice not found")
	// ErrInvalid is returned when a voice fails validation.
	ErrInvalid = errors.New("invalid voice")
)

// Voice is a speech profile. Audio holds a recorded sample, if any.
type Voice struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Label            string  `json:"label"`
	Type             string  `json:"type"`
	Pitch            float64 `json:"pitch"`
	Rate             float64 `json:"rate"`
	BrowserVoiceName string  `json:"browserVoiceName,omitempty"`
	Audio            []byte  `json:"audio,omitempty"`
	CreatedAt        int64   `json:"createdAt"`
}

// Validate checks the fields Save depends on.
func (v Voice) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	switch v.Type {
	case TypeBrowser, TypeRecorded, TypeCelebrity:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, v.Type)
	}
	if v.Pitch <= 0 || v.Pitch > MaxPitch {
		return fmt.Errorf("%w: pitch %.2f out of range (0, %.0f]", ErrInvalid, v.Pitch, MaxPitch)
	}
	if v.Rate <= 0 || v.Rate > MaxRate {
		return fmt.Errorf("%w: rate %.2f out of range (0, %.0f]", ErrInvalid, v.Rate, MaxRate)
	}
	return nil
}

var presets = []Voice{
	{ID: "preset-wise-elder", Name: "Wise Elder", Label: "A deep, reassuring elder voice", Type: TypeCelebrity, Pitch: 0.8, Rate: 0.8},
	{ID: "preset-loving-mother", Name: "Loving Mother", Label: "A warm, gentle maternal voice", Type: TypeCelebrity, Pitch: 1.2, Rate: 0.85},
	{ID: "preset-calm-narrator", Name: "Calm Narrator", Label: "Like Morgan Freeman reading your prayer", Type: TypeCelebrity, Pitch: 0.75, Rate: 0.78},
	{ID: "preset-gentle-pastor", Name: "Gentle Pastor", Label: "A soothing, encouraging pastoral voice", Type: TypeCelebrity, Pitch: 0.95, Rate: 0.82},
	{ID: "preset-inspiring-leader", Name: "Inspiring Leader", Label: "Like Oprah speaking from the heart", Type: TypeCelebrity, Pitch: 1.1, Rate: 0.88},
	{ID: "preset-meditative-guide", Name: "Meditative Guide", Label: "A peaceful, mindfulness-style delivery", Type: TypeCelebrity, Pitch: 1.0, Rate: 0.7},
}

// Presets returns the built-in voice presets.
func Presets() []Voice {
	out := make([]Voice, len(presets))
	copy(out, presets)
	return out
}

// Store is the persistence the service needs. *db.Store satisfies it.
type Store interface {
	UpsertVoice(ctx context.Context, v db.Voice) error
	GetVoice(ctx context.Context, id string) (db.Voice, error)
	ListVoices(ctx context.Context) ([]db.Voice, error)
	DeleteVoice(ctx context.Context, id string) error
}

// Service saves and loads user voices.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService creates a Service backed by store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns stored voices, oldest first.
func (s *Service) List(ctx context.Context) ([]Voice, error) {
	rows, err := s.store.ListVoices(ctx)
	if err != nil {
		return nil, err
	}
	voices := make([]Voice, len(rows))
	for i, row := range rows {
		voices[i] = fromRow(row)
	}
	return voices, nil
}

// Get returns the voice with id.
func (s *Service) Get(ctx context.Context, id string) (Voice, error) {
	row, err := s.store.GetVoice(ctx, id)
	if err != nil {
		return Voice{}, mapErr(err, id)
	}
	return fromRow(row), nil
}

// Save validates v and stores it, replacing any voice with the same id.
// A missing id or creation time is filled in.
func (s *Service) Save(ctx context.Context, v Voice) (Voice, error) {
	v.Name = strings.TrimSpace(v.Name)
	if err := v.Validate(); err != nil {
		return Voice{}, err
	}
	if v.ID == "" {
		v.ID = s.newID()
	}
	if v.CreatedAt == 0 {
		v.CreatedAt = s.now().UnixMilli()
	}

	if err := s.store.UpsertVoice(ctx, toRow(v)); err != nil {
		return Voice{}, err
	}
	return v, nil
}

// Delete removes the voice with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return mapErr(s.store.DeleteVoice(ctx, id), id)
}

func mapErr(err error, id string) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

func fromRow(row db.Voice) Voice {
	return Voice{
		ID:               row.ID,
		Name:             row.Name,
		Label:            row.Label,
		Type:             row.Type,
		Pitch:            row.Pitch,
		Rate:             row.Rate,
		BrowserVoiceName: row.BrowserVoiceName.String,
		Audio:            row.Audio,
		CreatedAt:        row.CreatedAt,
	}
}

func toRow(v Voice) db.Voice {
	return db.Voice{
		ID:               v.ID,
		Name:             v.Name,
		Label:            v.Label,
		Type:             v.Type,
		Pitch:            v.Pitch,
		Rate:             v.Rate,
		BrowserVoiceName: sql.NullString{String: v.BrowserVoiceName, Valid: v.BrowserVoiceName != ""},
		Audio:            v.Audio,
		CreatedAt:        v.CreatedAt,
	}
}
