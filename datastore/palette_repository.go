package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prism-palette/api/models"
	"github.com/prism-palette/api/palette"
)

const (
	savedPalettesKey  = "prism_saved_palettes"
	paletteHistoryKey = "prism_palette_history"
	HistoryLimit      = 5
)

var (
	ErrEmptyName       = errors.New("please enter a name for your palette")
	ErrPaletteNotFound = errors.New("palette not found")
)

type SavedPaletteRepository interface {
	Create(owner string, name string, colors []string) (models.SavedPalette, error)
	List(owner string) ([]models.SavedPalette, error)
	Delete(owner string, id string) error
	UpdateName(owner string, id string, name string) (models.SavedPalette, error)
}

// SavedPaletteStore keeps each owner's palettes as one JSON document. Every
// operation rewrites the whole document so readers never see partial state.
type SavedPaletteStore struct {
	kv    KeyValueStore
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewSavedPaletteStore(kv KeyValueStore) *SavedPaletteStore {
	return &SavedPaletteStore{
		kv:    kv,
		now:   func() time.Time { return time.Now().UTC() },
		newID: GeneratePaletteID,
	}
}

func (s *SavedPaletteStore) Create(owner string, name string, colors []string) (models.SavedPalette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedPalette{}, ErrEmptyName
	}
	canonical, err := palette.Normalize(colors)
	if err != nil {
		return models.SavedPalette{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load(owner)
	if err != nil {
		return models.SavedPalette{}, err
	}

	saved := models.SavedPalette{
		ID:        s.newID(),
		Name:      name,
		Colors:    canonical,
		CreatedAt: s.now(),
	}
	palettes = append(palettes, saved)

	if err := s.store(owner, palettes); err != nil {
		return models.SavedPalette{}, err
	}
	return saved, nil
}

func (s *SavedPaletteStore) List(owner string) ([]models.SavedPalette, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(owner)
}

func (s *SavedPaletteStore) Delete(owner string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load(owner)
	if err != nil {
		return err
	}

	kept := palettes[:0]
	found := false
	for _, p := range palettes {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrPaletteNotFound
	}
	return s.store(owner, kept)
}

// UpdateName renames a palette. Colors, id and creation time are untouched.
func (s *SavedPaletteStore) UpdateName(owner string, id string, name string) (models.SavedPalette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedPalette{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load(owner)
	if err != nil {
		return models.SavedPalette{}, err
	}
	for i := range palettes {
		if palettes[i].ID != id {
			continue
		}
		palettes[i].Name = name
		if err := s.store(owner, palettes); err != nil {
			return models.SavedPalette{}, err
		}
		return palettes[i], nil
	}
	return models.SavedPalette{}, ErrPaletteNotFound
}

func (s *SavedPaletteStore) load(owner string) ([]models.SavedPalette, error) {
	raw, ok, err := s.kv.Get(ownerKey(savedPalettesKey, owner))
	if err != nil {
		return nil, err
	}
	palettes := []models.SavedPalette{}
	if !ok {
		return palettes, nil
	}
	if err := json.Unmarshal([]byte(raw), &palettes); err != nil {
		return nil, fmt.Errorf("corrupt saved palettes for %s: %v", owner, err)
	}
	return palettes, nil
}

func (s *SavedPaletteStore) store(owner string, palettes []models.SavedPalette) error {
	raw, err := json.Marshal(palettes)
	if err != nil {
		return err
	}
	return s.kv.Set(ownerKey(savedPalettesKey, owner), string(raw))
}

func ownerKey(prefix, owner string) string {
	return prefix + ":" + owner
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GeneratePaletteID returns base36 unix milliseconds followed by seven random
// base36 characters.
func GeneratePaletteID() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < 7; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

type HistoryRepository interface {
	Push(owner string, colors []string) ([][]string, error)
	List(owner string) ([][]string, error)
}

// HistoryStore remembers the last HistoryLimit palettes an owner generated,
// oldest first.
type HistoryStore struct {
	kv KeyValueStore
	mu sync.Mutex
}

func NewHistoryStore(kv KeyValueStore) *HistoryStore {
	return &HistoryStore{kv: kv}
}

func (h *HistoryStore) Push(owner string, colors []string) ([][]string, error) {
	canonical, err := palette.Normalize(colors)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	history, err := h.load(owner)
	if err != nil {
		return nil, err
	}
	history = append(history, canonical)
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	if err := h.kv.Set(ownerKey(paletteHistoryKey, owner), string(raw)); err != nil {
		return nil, err
	}
	return history, nil
}

func (h *HistoryStore) List(owner string) ([][]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(owner)
}

func (h *HistoryStore) load(owner string) ([][]string, error) {
	raw, ok, err := h.kv.Get(ownerKey(paletteHistoryKey, owner))
	if err != nil {
		return nil, err
	}
	history := [][]string{}
	if !ok {
		return history, nil
	}
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("corrupt palette history for %s: %v", owner, err)
	}
	return history, nil
}
