package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// SensitiveDataMasker handles masking of provider credentials in logs
type SensitiveDataMasker struct {
	patterns        []sensitivePattern
	sensitiveFields map[string]bool
}

type sensitivePattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// NewSensitiveDataMasker creates a new data masker with patterns for the
// credential formats this service handles
func NewSensitiveDataMasker() *SensitiveDataMasker {
	patterns := []sensitivePattern{
		{
			name:        "Hugging Face API Key",
			regex:       regexp.MustCompile(`hf_[a-zA-Z0-9]{10,}`),
			replacement: "hf_***MASKED***",
		},
		{
			name:        "OpenAI API Key",
			regex:       regexp.MustCompile(`sk-[a-zA-Z0-9_-]{10,}`),
			replacement: "sk-***MASKED***",
		},
		{
			name:        "Bearer Token",
			regex:       regexp.MustCompile(`Bearer\s+[a-zA-Z0-9._-]+`),
			replacement: "Bearer ***MASKED***",
		},
	}

	fields := map[string]bool{}
	for _, f := range []string{
		"api_key", "apikey", "api-key",
		"secret", "password", "token",
		"authorization", "auth", "credential",
	} {
		fields[f] = true
	}

	return &SensitiveDataMasker{patterns: patterns, sensitiveFields: fields}
}

// MaskString applies all credential patterns to a string value
func (m *SensitiveDataMasker) MaskString(s string) string {
	for _, p := range m.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// MaskHeaders returns a copy of the headers with authorization values masked
func (m *SensitiveDataMasker) MaskHeaders(headers map[string][]string) map[string][]string {
	masked := make(map[string][]string, len(headers))
	for key, values := range headers {
		if m.isSensitiveField(key) {
			masked[key] = []string{"***MASKED***"}
			continue
		}
		maskedValues := make([]string, len(values))
		for i, v := range values {
			maskedValues[i] = m.MaskString(v)
		}
		masked[key] = maskedValues
	}
	return masked
}

// MaskMap returns a copy of the map with sensitive fields fully masked and
// credential patterns scrubbed from the remaining string values
func (m *SensitiveDataMasker) MaskMap(data map[string]any) map[string]any {
	masked := make(map[string]any, len(data))
	for key, value := range data {
		if m.isSensitiveField(key) {
			masked[key] = "***MASKED***"
			continue
		}
		switch v := value.(type) {
		case string:
			masked[key] = m.MaskString(v)
		case map[string]any:
			masked[key] = m.MaskMap(v)
		default:
			masked[key] = value
		}
	}
	return masked
}

// GetMaskedString formats any value and masks credential patterns in the result
func (m *SensitiveDataMasker) GetMaskedString(value any) string {
	return m.MaskString(fmt.Sprintf("%v", value))
}

func (m *SensitiveDataMasker) isSensitiveField(fieldName string) bool {
	return m.sensitiveFields[strings.ToLower(fieldName)]
}

// SanitizeHeaders masks credentials in headers using the default masker
func SanitizeHeaders(headers map[string][]string) map[string][]string {
	return defaultMasker.MaskHeaders(headers)
}

var defaultMasker = NewSensitiveDataMasker()
