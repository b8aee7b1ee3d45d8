package closet

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCM(t *testing.T) {
	assert.Equal(t, "59.89", FormatCM((180-0.34)/3))
	assert.Equal(t, "236.6", FormatCM(236.6))
	assert.Equal(t, "24", FormatCM(24))
	assert.Equal(t, "-3.5", FormatCM(-3.5))
	assert.Equal(t, NotANumber, FormatCM(math.Inf(1)))
	assert.Equal(t, NotANumber, FormatCM(math.NaN()))
}

func TestDimensionsJSONWithZeroShelves(t *testing.T) {
	spec := DefaultSpec()
	spec.ShelfCount = 0

	data, err := json.Marshal(Compute(spec))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"shelfWidth":null`)

	var decoded Dimensions
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, math.IsNaN(decoded.ShelfWidth))
	assert.Equal(t, 60.0, decoded.ShelfDepth)
}
