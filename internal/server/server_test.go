package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := New(Options{}).App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp, err := New(Options{}).App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDimensions(t *testing.T) {
	resp, body := post(t, "/api/dimensions", `{"width":200,"height":250,"depth":60,"bufferWidth":0.5,"doorCount":4,"shelfCount":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got DimensionsResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.InDelta(t, 49.75, got.Dimensions.DoorWidth, 1e-9)
	assert.InDelta(t, 246.6, got.Dimensions.DoorHeight, 1e-9)
	assert.InDelta(t, 39.8, got.Dimensions.ShelfWidth, 1e-9)
	assert.InDelta(t, 50, got.Dimensions.ShelfHeight, 1e-9)
	assert.Equal(t, 2, got.Dimensions.ExternalBeamCount)
}

func TestDimensionsEmptyBodyUsesDefaults(t *testing.T) {
	resp, body := post(t, "/api/dimensions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"doorCount":3`)
}

func TestInvalidJSON(t *testing.T) {
	resp, body := post(t, "/api/dimensions", `{"width":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}

func TestInvalidSpecRejected(t *testing.T) {
	resp, body := post(t, "/api/assembly", `{"doorCount":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "door count")
}

func TestInvalidSpecClamped(t *testing.T) {
	resp, body := post(t, "/api/dimensions?policy=clamp", `{"doorCount":0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"doorCount":1`)
}

func TestAssembly(t *testing.T) {
	resp, body := post(t, "/api/assembly", `{"doorCount":2,"shelfCount":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got struct {
		ID    string `json:"id"`
		Boxes []struct {
			Kind string `json:"kind"`
		} `json:"boxes"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.NotEmpty(t, got.ID)
	assert.Len(t, got.Boxes, 5+3+2)
}

func TestCutList(t *testing.T) {
	resp, body := post(t, "/api/cutlist", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"kind":"door"`)
}

func TestElevationSVG(t *testing.T) {
	resp, body := post(t, "/api/elevation.svg?doors=open", `{"language":"he"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.NotContains(t, string(body), `data-kind="door"`)
	assert.Contains(t, string(body), "direction:rtl")
}

func TestExport(t *testing.T) {
	resp, body := post(t, "/api/export/stl-ascii", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.True(t, strings.HasPrefix(string(body), "solid closet"))

	resp, _ = post(t, "/api/export/obj", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportUnknownFormatIsNotFound(t *testing.T) {
	for _, body := range []string{`{}`, `{"doorCount":0}`, `not json`} {
		resp, data := post(t, "/api/export/obj", body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, body)
		assert.Contains(t, string(data), "unknown export format", body)
	}

	resp, _ := post(t, "/api/export/scad", `{"doorCount":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
