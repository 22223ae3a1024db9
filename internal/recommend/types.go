package recommend

// Profile is the child reader profile. Only age and reading_level are
// required; any extra keys are passed through into the generation prompt.
type Profile map[string]any

// Valid reports whether the profile carries truthy age and reading_level.
func (p Profile) Valid() bool {
	return truthy(p["age"]) && truthy(p["reading_level"])
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	default:
		return true
	}
}

type Book struct {
	Title            string   `json:"title"`
	Author           string   `json:"author"`
	Year             int      `json:"year,omitempty"`
	ISBN             string   `json:"isbn,omitempty"`
	CoverURL         string   `json:"cover_url,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	AgeRange         string   `json:"age_range,omitempty"`
	WhyRecommended   string   `json:"why_recommended,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	ContentWarnings  []string `json:"content_warnings"`
}

// Categories is the canonical two-list shape every response carries.
type Categories struct {
	Fiction    []Book `json:"fiction"`
	Nonfiction []Book `json:"nonfiction"`
}

// Result source values.
const (
	SourceMock     = "mock"
	SourceGemini   = "gemini"
	SourceFallback = "fallback-mock"
)

type Result struct {
	Results    Categories `json:"results"`
	Source     string     `json:"source,omitempty"`
	RawText    string     `json:"raw_text,omitempty"`
	DebugError string     `json:"debug_error,omitempty"`
}
