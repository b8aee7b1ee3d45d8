package closet

import (
	"encoding/json"
	"math"
	"strconv"
)

// NotANumber is shown in place of infinite or NaN measurements
const NotANumber = "—"

// FormatCM formats a measurement with two decimals, trimming zeros
func FormatCM(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotANumber
	}
	s := strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// dimensionsJSON mirrors Dimensions with nullable numbers, because JSON
// cannot carry the Inf and NaN a zero shelf count produces.
type dimensionsJSON struct {
	DoorWidth          *float64 `json:"doorWidth"`
	DoorHeight         *float64 `json:"doorHeight"`
	InternalBeamHeight *float64 `json:"internalBeamHeight"`
	ShelfWidth         *float64 `json:"shelfWidth"`
	ShelfHeight        *float64 `json:"shelfHeight"`
	ShelfDepth         *float64 `json:"shelfDepth"`
	ExternalBeamCount  int      `json:"externalBeamCount"`
	InternalBeamCount  int      `json:"internalBeamCount"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// MarshalJSON encodes non-finite measurements as null
func (d Dimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal(dimensionsJSON{
		DoorWidth:          finite(d.DoorWidth),
		DoorHeight:         finite(d.DoorHeight),
		InternalBeamHeight: finite(d.InternalBeamHeight),
		ShelfWidth:         finite(d.ShelfWidth),
		ShelfHeight:        finite(d.ShelfHeight),
		ShelfDepth:         finite(d.ShelfDepth),
		ExternalBeamCount:  d.ExternalBeamCount,
		InternalBeamCount:  d.InternalBeamCount,
	})
}

// UnmarshalJSON decodes null measurements as NaN
func (d *Dimensions) UnmarshalJSON(data []byte) error {
	var w dimensionsJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = Dimensions{
		DoorWidth:          orNaN(w.DoorWidth),
		DoorHeight:         orNaN(w.DoorHeight),
		InternalBeamHeight: orNaN(w.InternalBeamHeight),
		ShelfWidth:         orNaN(w.ShelfWidth),
		ShelfHeight:        orNaN(w.ShelfHeight),
		ShelfDepth:         orNaN(w.ShelfDepth),
		ExternalBeamCount:  w.ExternalBeamCount,
		InternalBeamCount:  w.InternalBeamCount,
	}
	return nil
}
