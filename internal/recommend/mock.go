package recommend

// Fixed dataset served in mock mode and on live-call fallback.
var (
	mockFiction = []Book{{
		Title:            "The Dragon's Secret",
		Author:           "Maria Swift",
		Year:             2023,
		ISBN:             "978-1234567890",
		CoverURL:         "https://via.placeholder.com/200x300",
		ShortDescription: "A young wizard discovers a friendly dragon hiding in the school library, leading to an adventure about friendship and courage.",
		AgeRange:         "8-12",
		WhyRecommended:   "Based on interests.",
		Tags:             []string{"fantasy", "friendship", "adventure", "dragons"},
		ContentWarnings:  []string{"mild peril"},
	}}

	mockNonfiction = []Book{{
		Title:            "Amazing Science Experiments at Home",
		Author:           "Dr. Sarah Smart",
		Year:             2024,
		ISBN:             "978-0987654321",
		CoverURL:         "https://via.placeholder.com/200x300",
		ShortDescription: "A collection of safe and fun science experiments that can be done with everyday household items.",
		AgeRange:         "7-13",
		WhyRecommended:   "Perfect for science lovers.",
		Tags:             []string{"science", "experiments", "education", "STEM"},
		ContentWarnings:  nil,
	}}
)

// MockResult returns the fixed dataset trimmed to maxPerCategory per list.
func MockResult(maxPerCategory int) Result {
	return Result{Results: Categories{
		Fiction:    trim(mockFiction, maxPerCategory),
		Nonfiction: trim(mockNonfiction, maxPerCategory),
	}}
}

func trim(books []Book, n int) []Book {
	if n < 0 {
		n = 0
	}
	if n > len(books) {
		n = len(books)
	}
	out := make([]Book, n)
	copy(out, books[:n])
	return out
}
