package provider

import (
	"encoding/json"
	"fmt"
)

// NormalizeGeneration interprets a decoded JSON value of unknown shape into
// generated text. Text-generation models disagree on their response layout,
// so extraction is an ordered sequence of attempts and the first match wins:
//
//  1. a non-empty array whose first element carries "generated_text"
//  2. an object carrying "generated_text"
//  3. an object carrying "error" — a failure even though the HTTP status was
//     200, because HTTP success does not imply semantic success
//  4. an object carrying a non-empty "choices" array whose first element
//     carries "text"
//  5. a stringified form of the whole value as the last resort
func NormalizeGeneration(value any) Outcome {
	if list, ok := value.([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			if text, ok := first["generated_text"]; ok {
				return Success(stringify(text))
			}
		}
	}

	if object, ok := value.(map[string]any); ok {
		if text, ok := object["generated_text"]; ok {
			return Success(stringify(text))
		}
		if errValue, ok := object["error"]; ok {
			return Failure(fmt.Sprintf("HF error: %s", stringify(errValue)))
		}
		if choices, ok := object["choices"].([]any); ok && len(choices) > 0 {
			if first, ok := choices[0].(map[string]any); ok {
				if text, ok := first["text"]; ok {
					return Success(stringify(text))
				}
			}
		}
	}

	return Success(stringify(value))
}

// DecodeGeneration decodes a raw response body and normalizes it
func DecodeGeneration(body []byte) Outcome {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return Failure(fmt.Sprintf("Parse error: %v", err))
	}
	return NormalizeGeneration(value)
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
