package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "simple function", code: "func add(a, b int) int { return a + b }"},
		{name: "python snippet", code: "def greet(name):\n    return f\"hello {name}\""},
		{name: "code containing format verbs", code: "fmt.Printf(\"%s %d\", name, count)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.code)

			assert.Contains(t, prompt, tt.code)
			assert.Contains(t, prompt, "Please generate ONLY a documentation docstring or block comment")
			assert.Contains(t, prompt, "Documentation:")
		})
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	code := "class Foo: pass"
	assert.Equal(t, BuildPrompt(code), BuildPrompt(code))
}
