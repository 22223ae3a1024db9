// Package extract recovers a JSON value from free-form model output. Models
// wrap JSON in prose or markdown fences often enough that a strict parse of
// the whole reply is the exception, not the rule.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNoJSON is returned when no strategy yields parsable JSON.
var ErrNoJSON = errors.New("no JSON found in model output")

var braceBlock = regexp.MustCompile(`(?s)\{.*\}`)

// Candidate picks the region of text most likely to hold JSON: the first
// ```json fenced block, else the first generic fenced block, else the
// trimmed text itself.
func Candidate(text string) string {
	if _, after, ok := strings.Cut(text, "```json"); ok {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	if _, after, ok := strings.Cut(text, "```"); ok {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	return strings.TrimSpace(text)
}

// JSON extracts and decodes a JSON value from text. Strategies in order,
// first success wins:
//
//  1. strict parse of the fenced/trimmed candidate;
//  2. strict parse of the first greedy {...} block inside the candidate;
//  3. jsonrepair of that block (trailing commas, single quotes and the
//     like), then strict parse.
//
// Repair only ever runs on a brace-delimited block, so plain prose still
// fails with ErrNoJSON.
func JSON(text string) (any, error) {
	candidate := Candidate(text)

	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err == nil {
		return v, nil
	}

	block := braceBlock.FindString(candidate)
	if block == "" {
		return nil, ErrNoJSON
	}
	if err := json.Unmarshal([]byte(block), &v); err == nil {
		return v, nil
	}

	repaired, err := jsonrepair.JSONRepair(block)
	if err != nil {
		return nil, fmt.Errorf("%w: repair: %v", ErrNoJSON, err)
	}
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	return v, nil
}
