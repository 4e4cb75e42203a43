package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	newRouter().ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return w, body
}

func TestHealthCheck(t *testing.T) {
	w, body := doRequest(t, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestListScales(t *testing.T) {
	w, body := doRequest(t, "/api/v1/scales")
	assert.Equal(t, http.StatusOK, w.Code)
	names, ok := body["scales"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, names, "major")
	assert.Contains(t, names, "melodic minor")
	assert.Contains(t, names, "blues")
}

func TestGetScale(t *testing.T) {
	w, body := doRequest(t, "/api/v1/scales/major?root=C4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "C4", body["root"])
	assert.Equal(t,
		[]interface{}{"C4", "D4", "E4", "F4", "G4", "A4", "B4"},
		body["pitches"])
}

func TestGetScaleDefaultRoot(t *testing.T) {
	w, body := doRequest(t, "/api/v1/scales/major")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "C4", body["root"])
}

func TestGetDirectionalScale(t *testing.T) {
	w, body := doRequest(t, "/api/v1/scales/melodic%20minor?root=A4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		[]interface{}{"A4", "B4", "C5", "D5", "E5", "F#5", "G#5"},
		body["ascending"])
	assert.Equal(t,
		[]interface{}{"A4", "B4", "C5", "D5", "E5", "F5", "G5"},
		body["descending"])
}

func TestGetScaleErrors(t *testing.T) {
	w, _ := doRequest(t, "/api/v1/scales/chromatic")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doRequest(t, "/api/v1/scales/major?root=H4")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the seventh of a G9 major scale would pass 127
	w, _ = doRequest(t, "/api/v1/scales/major?root=G9")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListChords(t *testing.T) {
	w, body := doRequest(t, "/api/v1/chords")
	assert.Equal(t, http.StatusOK, w.Code)
	names, ok := body["chords"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, names, "major")
	assert.Contains(t, names, "dominant seventh")
}

func TestGetChord(t *testing.T) {
	w, body := doRequest(t, "/api/v1/chords/dominant%20seventh?root=G4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		[]interface{}{"G4", "B4", "D5", "F5"},
		body["pitches"])
}

func TestGetChordNotFound(t *testing.T) {
	w, _ := doRequest(t, "/api/v1/chords/power%20chord")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSymbol(t *testing.T) {
	w, body := doRequest(t, "/api/v1/symbol?q=Am7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "minor seventh", body["chord"])
	assert.Equal(t,
		[]interface{}{"A4", "C5", "E5", "G5"},
		body["pitches"])
}

func TestSymbolSlashBass(t *testing.T) {
	w, body := doRequest(t, "/api/v1/symbol?q=Em/G&octave=4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		[]interface{}{"G3", "E4", "G4", "B4"},
		body["pitches"])
}

func TestSymbolErrors(t *testing.T) {
	w, _ := doRequest(t, "/api/v1/symbol?q=Xyz")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, "/api/v1/symbol?q=C&octave=12")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, "/api/v1/symbol?q=G9&octave=9")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranspose(t *testing.T) {
	w, body := doRequest(t, "/api/v1/transpose?pitch=C4&by=P5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "G4", body["result"])
	assert.Equal(t, float64(67), body["semitones"])

	w, body = doRequest(t, "/api/v1/transpose?pitch=C4&by=-12")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "C3", body["result"])
}

func TestTransposeErrors(t *testing.T) {
	w, _ := doRequest(t, "/api/v1/transpose?pitch=C4&by=banana")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, "/api/v1/transpose?pitch=G9&by=P5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIntervals(t *testing.T) {
	w, body := doRequest(t, "/api/v1/intervals")
	assert.Equal(t, http.StatusOK, w.Code)
	intervals, ok := body["intervals"].([]interface{})
	require.True(t, ok)
	require.Len(t, intervals, 13)

	fifth, ok := intervals[7].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "perfect fifth", fifth["name"])
	assert.Equal(t, float64(7), fifth["semitones"])
}
