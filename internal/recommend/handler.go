package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bookscout/internal/config"
	"bookscout/internal/llm/extract"
)

// TextGenerator is the live-call seam: one prompt in, raw model text out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const liveCallTimeout = 30 * time.Second

type Handler struct {
	cfg *config.Config
	gen TextGenerator
	log zerolog.Logger
}

func NewHandler(cfg *config.Config, gen TextGenerator, log zerolog.Logger) *Handler {
	return &Handler{cfg: cfg, gen: gen, log: log}
}

type recommendRequest struct {
	Profile               Profile  `json:"profile"`
	MaxResultsPerCategory *int     `json:"max_results_per_category"`
	ExcludeTitles         []string `json:"exclude_titles"`
	Seed                  string   `json:"seed"`
}

// Recommend handles POST /api/recommend. The live path never surfaces a 5xx:
// any upstream failure downgrades to the mock dataset with debug_error set.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}
	if !req.Profile.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request. Required fields: age, reading_level",
		})
		return
	}

	maxPer := 5
	if req.MaxResultsPerCategory != nil {
		maxPer = *req.MaxResultsPerCategory
	}
	// exclude_titles and seed are accepted but inert: the upstream prompt
	// never enforces them on output.
	if req.Seed == "" {
		req.Seed = uuid.NewString()
	}

	if h.cfg.MockMode {
		h.log.Debug().Msg("mock mode, serving fixed dataset")
		res := MockResult(maxPer)
		res.Source = SourceMock
		writeJSON(w, http.StatusOK, res)
		return
	}

	res, err := h.live(r.Context(), req.Profile, maxPer)
	if err != nil {
		h.log.Error().Err(err).Msg("gemini call failed, serving mock fallback")
		fb := MockResult(maxPer)
		fb.Source = SourceFallback
		fb.DebugError = err.Error()
		writeJSON(w, http.StatusOK, fb)
		return
	}
	res.Source = SourceGemini
	writeJSON(w, http.StatusOK, res)
}

// TestGemini handles GET /api/test-gemini: the one endpoint that propagates a
// live failure as HTTP 500.
func (h *Handler) TestGemini(w http.ResponseWriter, r *http.Request) {
	sample := Profile{"age": 8, "reading_level": "Beginner"}

	if h.cfg.MockMode {
		writeJSON(w, http.StatusOK, map[string]any{
			"warning": "MOCK_MODE is true",
			"result":  MockResult(1),
			"source":  SourceMock,
		})
		return
	}

	res, err := h.live(r.Context(), sample, 1)
	if err != nil {
		h.log.Error().Err(err).Msg("test-gemini failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "result": res, "source": SourceGemini})
}

func (h *Handler) live(ctx context.Context, profile Profile, maxPer int) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, liveCallTimeout)
	defer cancel()

	text, err := h.gen.GenerateText(ctx, BuildPrompt(profile, maxPer))
	if err != nil {
		return Result{}, err
	}
	h.log.Debug().Str("raw_text", capped(text, 1000)).Msg("gemini raw text")

	parsed, err := extract.JSON(text)
	if err != nil {
		return Result{}, fmt.Errorf("failed to extract JSON from gemini text: %w (raw: %s)", err, capped(text, 1000))
	}
	cats, err := Normalize(parsed)
	if err != nil {
		return Result{}, err
	}
	return Result{Results: cats, RawText: text}, nil
}

func capped(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
