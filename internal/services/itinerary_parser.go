package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aniket856/sanskriti/internal/models/response_models"
	"github.com/aniket856/sanskriti/pkg/utils"
)

// parseItineraryReply extracts the JSON block embedded in the model's free
// text reply and decodes it. The reply is untrusted: a decoded plan is only
// accepted if it is structurally usable for the requested duration, otherwise
// the caller moves on to its retry or the fallback generator.
func parseItineraryReply(raw string, expectedDays int) (response_models.ItineraryData, error) {
	var data response_models.ItineraryData

	block, ok := extractJSONBlock(raw)
	if !ok {
		return data, fmt.Errorf("%w: no JSON object found in reply", utils.ErrUnexpectedBehaviorOfAI)
	}

	if err := json.Unmarshal([]byte(block), &data); err != nil {
		return data, fmt.Errorf("%w: decode itinerary reply: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	if err := validateItineraryData(data, expectedDays); err != nil {
		return data, err
	}

	return data, nil
}

// extractJSONBlock slices the first top-level JSON object out of free text.
// Brace matching is string-aware so prose containing stray braces before the
// real payload does not truncate it; when no balanced object exists it falls
// back to the span between the first '{' and the last '}'.
func extractJSONBlock(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	if start == -1 {
		return "", false
	}

	if end := findMatchingBrace(raw, start); end != -1 {
		return raw[start : end+1], true
	}

	end := strings.LastIndex(raw, "}")
	if end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// findMatchingBrace returns the index of the brace closing the object opened
// at start, or -1 when the text runs out first.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func validateItineraryData(data response_models.ItineraryData, expectedDays int) error {
	if len(data.Days) != expectedDays {
		return fmt.Errorf("expected %d days, got %d", expectedDays, len(data.Days))
	}
	for i, day := range data.Days {
		if day.Day != i+1 {
			return fmt.Errorf("day %d has incorrect day number: %d", i+1, day.Day)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d has no activities", day.Day)
		}
		if day.Accommodation.Name == "" {
			return fmt.Errorf("day %d has no accommodation", day.Day)
		}
		if len(day.Meals) == 0 {
			return fmt.Errorf("day %d has no meals", day.Day)
		}
		if len(day.SafetyTips) == 0 {
			return fmt.Errorf("day %d has no safety tips", day.Day)
		}
	}
	return nil
}
