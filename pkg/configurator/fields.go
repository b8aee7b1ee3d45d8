package configurator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gocloset/pkg/closet"
)

// Field names a form input. The names double as message IDs.
type Field string

const (
	FieldWidth          Field = "width"
	FieldHeight         Field = "height"
	FieldDepth          Field = "depth"
	FieldBufferWidth    Field = "bufferWidth"
	FieldDoorCount      Field = "doorCount"
	FieldShelfCount     Field = "shelfCount"
	FieldStructureColor Field = "structureColor"
	FieldDoorColor      Field = "doorColor"
	FieldShelfColor     Field = "shelfColor"
	FieldLanguage       Field = "language"
)

// NumericFields are the fields edited as numbers, in form order
var NumericFields = []Field{FieldWidth, FieldHeight, FieldDepth, FieldBufferWidth, FieldDoorCount, FieldShelfCount}

// ColorFields are the fields edited with color pickers, in form order
var ColorFields = []Field{FieldStructureColor, FieldDoorColor, FieldShelfColor}

// ErrUnknownField is returned for a field name the form does not have
var ErrUnknownField = errors.New("unknown field")

// ParseAction turns the text of a form input into an action
func ParseAction(field Field, text string) (Action, error) {
	text = strings.TrimSpace(text)
	switch field {
	case FieldWidth, FieldHeight, FieldDepth, FieldBufferWidth:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		switch field {
		case FieldWidth:
			return SetWidth{v}, nil
		case FieldHeight:
			return SetHeight{v}, nil
		case FieldDepth:
			return SetDepth{v}, nil
		default:
			return SetBufferWidth{v}, nil
		}
	case FieldDoorCount, FieldShelfCount:
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		if field == FieldDoorCount {
			return SetDoorCount{v}, nil
		}
		return SetShelfCount{v}, nil
	case FieldStructureColor, FieldDoorColor, FieldShelfColor:
		c, err := closet.ParseColor(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return ColorAction(field, c), nil
	case FieldLanguage:
		lang := closet.Language(text)
		if !lang.Valid() {
			return nil, fmt.Errorf("%s=%q: %w", field, text, closet.ErrLanguage)
		}
		return SetLanguage{lang}, nil
	}
	return nil, fmt.Errorf("%q: %w", field, ErrUnknownField)
}

// ColorAction returns the action setting the color of a color field
func ColorAction(field Field, c closet.Color) Action {
	switch field {
	case FieldDoorColor:
		return SetDoorColor{c}
	case FieldShelfColor:
		return SetShelfColor{c}
	}
	return SetStructureColor{c}
}

// Value returns the form text of a field
func Value(spec closet.Spec, field Field) string {
	switch field {
	case FieldWidth:
		return formatNumber(spec.Width)
	case FieldHeight:
		return formatNumber(spec.Height)
	case FieldDepth:
		return formatNumber(spec.Depth)
	case FieldBufferWidth:
		return formatNumber(spec.BufferWidth)
	case FieldDoorCount:
		return strconv.Itoa(spec.DoorCount)
	case FieldShelfCount:
		return strconv.Itoa(spec.ShelfCount)
	case FieldStructureColor:
		return spec.StructureColor.Hex()
	case FieldDoorColor:
		return spec.DoorColor.Hex()
	case FieldShelfColor:
		return spec.ShelfColor.Hex()
	case FieldLanguage:
		return string(spec.Language)
	}
	return ""
}

// ColorOf returns the color a color field holds
func ColorOf(spec closet.Spec, field Field) closet.Color {
	switch field {
	case FieldDoorColor:
		return spec.DoorColor
	case FieldShelfColor:
		return spec.ShelfColor
	}
	return spec.StructureColor
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
