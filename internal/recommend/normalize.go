package recommend

import (
	"encoding/json"
	"fmt"
)

// Normalize maps the shapes the model is known to produce onto Categories:
// an object with a nested "results" object, a plain {fiction, nonfiction}
// object, or a bare array (taken entirely as fiction). Anything else yields
// empty lists. Missing categories default to empty lists; a category that
// does not decode as a book list is an error.
func Normalize(parsed any) (Categories, error) {
	switch v := parsed.(type) {
	case map[string]any:
		if nested, ok := v["results"]; ok {
			m, ok := nested.(map[string]any)
			if !ok {
				return Categories{}, fmt.Errorf("results is %T, want object", nested)
			}
			return categoriesOf(m)
		}
		return categoriesOf(v)
	case []any:
		fiction, err := decodeBooks(v)
		if err != nil {
			return Categories{}, err
		}
		return Categories{Fiction: fiction, Nonfiction: []Book{}}, nil
	default:
		return Categories{Fiction: []Book{}, Nonfiction: []Book{}}, nil
	}
}

func categoriesOf(m map[string]any) (Categories, error) {
	fiction, err := decodeBooks(m["fiction"])
	if err != nil {
		return Categories{}, fmt.Errorf("fiction: %w", err)
	}
	nonfiction, err := decodeBooks(m["nonfiction"])
	if err != nil {
		return Categories{}, fmt.Errorf("nonfiction: %w", err)
	}
	return Categories{Fiction: fiction, Nonfiction: nonfiction}, nil
}

func decodeBooks(v any) ([]Book, error) {
	if v == nil {
		return []Book{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var books []Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, fmt.Errorf("not a book list: %w", err)
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}
