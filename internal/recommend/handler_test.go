package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookscout/internal/config"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTestHandler(mock bool, gen TextGenerator) *Handler {
	cfg := &config.Config{Port: "5000", MockMode: mock, GeminiModel: "gemini-1.5-flash"}
	return NewHandler(cfg, gen, zerolog.Nop())
}

func doRecommend(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)

	var res Result
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestRecommendRejectsInvalidProfile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body object", `{}`},
		{"empty profile", `{"profile":{}}`},
		{"missing reading_level", `{"profile":{"age":8}}`},
		{"missing age", `{"profile":{"reading_level":"Beginner"}}`},
		{"zero age", `{"profile":{"age":0,"reading_level":"Beginner"}}`},
		{"empty reading_level", `{"profile":{"age":8,"reading_level":""}}`},
	}
	h := newTestHandler(true, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doRecommend(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid request. Required fields: age, reading_level")
		})
	}
}

func TestRecommendRejectsMalformedJSON(t *testing.T) {
	h := newTestHandler(true, nil)
	rec, _ := doRecommend(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendMockMode(t *testing.T) {
	h := newTestHandler(true, nil)

	rec, res := doRecommend(t, h, `{"profile":{"age":8,"reading_level":"Beginner"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SourceMock, res.Source)
	assert.Len(t, res.Results.Fiction, 1)
	assert.Len(t, res.Results.Nonfiction, 1)
	assert.Equal(t, "The Dragon's Secret", res.Results.Fiction[0].Title)
	assert.Empty(t, res.DebugError)
}

func TestRecommendMockModeRespectsMax(t *testing.T) {
	tests := []struct {
		name string
		body string
		max  int
	}{
		{"zero", `{"profile":{"age":8,"reading_level":"Beginner"},"max_results_per_category":0}`, 0},
		{"larger than dataset", `{"profile":{"age":8,"reading_level":"Beginner"},"max_results_per_category":10}`, 10},
	}
	h := newTestHandler(true, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, res := doRecommend(t, h, tt.body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.LessOrEqual(t, len(res.Results.Fiction), tt.max)
			assert.LessOrEqual(t, len(res.Results.Nonfiction), tt.max)
		})
	}
}

func TestRecommendLiveSuccess(t *testing.T) {
	gen := &stubGenerator{text: "```json\n{\"fiction\":[{\"title\":\"Matilda\",\"author\":\"Roald Dahl\"}],\"nonfiction\":[]}\n```"}
	h := newTestHandler(false, gen)

	rec, res := doRecommend(t, h, `{"profile":{"age":8,"reading_level":"Beginner"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SourceGemini, res.Source)
	require.Len(t, res.Results.Fiction, 1)
	assert.Equal(t, "Matilda", res.Results.Fiction[0].Title)
	assert.Empty(t, res.Results.Nonfiction)
	assert.Contains(t, res.RawText, "Matilda")
}

func TestRecommendLiveNestedResults(t *testing.T) {
	gen := &stubGenerator{text: `{"results":{"fiction":[{"title":"Holes","author":"Louis Sachar"}],"nonfiction":[]}}`}
	h := newTestHandler(false, gen)

	rec, res := doRecommend(t, h, `{"profile":{"age":10,"reading_level":"Intermediate"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SourceGemini, res.Source)
	require.Len(t, res.Results.Fiction, 1)
	assert.Equal(t, "Holes", res.Results.Fiction[0].Title)
}

func TestRecommendFallsBackOnUpstreamError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("gemini: 503 overloaded")}
	h := newTestHandler(false, gen)

	rec, res := doRecommend(t, h, `{"profile":{"age":8,"reading_level":"Beginner"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.DebugError, "503 overloaded")
	assert.Len(t, res.Results.Fiction, 1)
	assert.Len(t, res.Results.Nonfiction, 1)
}

func TestRecommendFallsBackOnUnparsableText(t *testing.T) {
	gen := &stubGenerator{text: "Sorry, I cannot produce a list today."}
	h := newTestHandler(false, gen)

	rec, res := doRecommend(t, h, `{"profile":{"age":8,"reading_level":"Beginner"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.DebugError, "failed to extract JSON")
}

func TestRecommendFallsBackOnMissingKey(t *testing.T) {
	gen := &stubGenerator{err: errors.New("GEMINI_API_KEY is not set")}
	h := newTestHandler(false, gen)

	rec, res := doRecommend(t, h, `{"profile":{"age":8,"reading_level":"Beginner"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.DebugError, "GEMINI_API_KEY")
}

func TestTestGeminiMockMode(t *testing.T) {
	h := newTestHandler(true, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/test-gemini", nil)
	rec := httptest.NewRecorder()
	h.TestGemini(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MOCK_MODE is true", body["warning"])
	assert.Equal(t, SourceMock, body["source"])
}

func TestTestGeminiLive(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen := &stubGenerator{text: `{"fiction":[],"nonfiction":[]}`}
		h := newTestHandler(false, gen)
		req := httptest.NewRequest(http.MethodGet, "/api/test-gemini", nil)
		rec := httptest.NewRecorder()
		h.TestGemini(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, SourceGemini, body["source"])
	})

	t.Run("failure surfaces 500", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("boom")}
		h := newTestHandler(false, gen)
		req := httptest.NewRequest(http.MethodGet, "/api/test-gemini", nil)
		rec := httptest.NewRecorder()
		h.TestGemini(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "boom", body["error"])
	})
}
