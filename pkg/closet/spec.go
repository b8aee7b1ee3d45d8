package closet

import (
	"errors"
	"fmt"
	"math"
)

// MaxShelves is the largest shelf count the configurator offers
const MaxShelves = 10

// Language selects the display dictionary. It never affects computation.
type Language string

const (
	English Language = "en"
	Hebrew  Language = "he"
)

// Languages lists the supported languages in menu order
var Languages = []Language{English, Hebrew}

// Valid reports whether the language is supported
func (l Language) Valid() bool {
	return l == English || l == Hebrew
}

// Spec is the complete set of user-editable closet inputs.
// It is a value type: edits produce a new Spec.
type Spec struct {
	Width          float64  `json:"width" yaml:"width" toml:"width"`
	Height         float64  `json:"height" yaml:"height" toml:"height"`
	Depth          float64  `json:"depth" yaml:"depth" toml:"depth"`
	BufferWidth    float64  `json:"bufferWidth" yaml:"bufferWidth" toml:"bufferWidth"`
	DoorCount      int      `json:"doorCount" yaml:"doorCount" toml:"doorCount"`
	ShelfCount     int      `json:"shelfCount" yaml:"shelfCount" toml:"shelfCount"`
	StructureColor Color    `json:"structureColor" yaml:"structureColor" toml:"structureColor"`
	DoorColor      Color    `json:"doorColor" yaml:"doorColor" toml:"doorColor"`
	ShelfColor     Color    `json:"shelfColor" yaml:"shelfColor" toml:"shelfColor"`
	Language       Language `json:"language" yaml:"language" toml:"language"`
}

// DefaultSpec returns the closet shown when the configurator starts
func DefaultSpec() Spec {
	return Spec{
		Width:          180,
		Height:         240,
		Depth:          60,
		BufferWidth:    0.17,
		DoorCount:      3,
		ShelfCount:     5,
		StructureColor: Color{R: 0x8b, G: 0x5a, B: 0x2b},
		DoorColor:      Color{R: 0xd2, G: 0xb4, B: 0x8c},
		ShelfColor:     Color{R: 0xa0, G: 0x52, B: 0x2d},
		Language:       English,
	}
}

// Validation errors
var (
	ErrNonPositiveDimension = errors.New("width, height and depth must be positive")
	ErrBufferTooWide        = errors.New("buffer width must be non-negative and less than half the width")
	ErrDoorCount            = errors.New("door count must be at least 1")
	ErrShelfCount           = errors.New("shelf count must be between 0 and 10")
	ErrLanguage             = errors.New("unsupported language")
)

// Validate reports every rule the spec breaks, joined into one error
func (s Spec) Validate() error {
	var errs []error
	for _, d := range []struct {
		name  string
		value float64
	}{{"width", s.Width}, {"height", s.Height}, {"depth", s.Depth}} {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			errs = append(errs, fmt.Errorf("%s=%v: %w", d.name, d.value, ErrNonPositiveDimension))
		}
	}
	if !(s.BufferWidth >= 0) || !(s.BufferWidth < s.Width/2) {
		errs = append(errs, fmt.Errorf("bufferWidth=%v: %w", s.BufferWidth, ErrBufferTooWide))
	}
	if s.DoorCount < 1 {
		errs = append(errs, fmt.Errorf("doorCount=%d: %w", s.DoorCount, ErrDoorCount))
	}
	if s.ShelfCount < 0 || s.ShelfCount > MaxShelves {
		errs = append(errs, fmt.Errorf("shelfCount=%d: %w", s.ShelfCount, ErrShelfCount))
	}
	if !s.Language.Valid() {
		errs = append(errs, fmt.Errorf("language=%q: %w", s.Language, ErrLanguage))
	}
	return errors.Join(errs...)
}

// minDimension keeps clamped closets large enough for the 2 cm frame
// and the 1.7 cm reveals on both sides.
const minDimension = 10

// Clamp coerces the spec into the valid domain. Values that are already
// valid are returned unchanged.
func (s Spec) Clamp() Spec {
	s.Width = clampDimension(s.Width)
	s.Height = clampDimension(s.Height)
	s.Depth = clampDimension(s.Depth)
	if !(s.BufferWidth >= 0) {
		s.BufferWidth = 0
	}
	if maxBuffer := s.Width/2 - minDimension/2; s.BufferWidth > maxBuffer {
		s.BufferWidth = maxBuffer
	}
	s.DoorCount = max(s.DoorCount, 1)
	s.ShelfCount = min(max(s.ShelfCount, 0), MaxShelves)
	if !s.Language.Valid() {
		s.Language = English
	}
	return s
}

func clampDimension(v float64) float64 {
	if math.IsNaN(v) || v < minDimension {
		return minDimension
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat32
	}
	return v
}
