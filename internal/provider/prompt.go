package provider

import "fmt"

// promptTemplate asks strictly for a docstring or block comment so models do
// not pad the output with explanations
const promptTemplate = "Please generate ONLY a documentation docstring or block comment for the following code. " +
	"Return only the docstring or comment text (no extra explanation).\n\n" +
	"Code:\n%s\n\nDocumentation:"

// BuildPrompt wraps user-supplied code in the fixed instruction template.
// The result is deterministic: it always contains the code verbatim.
func BuildPrompt(code string) string {
	return fmt.Sprintf(promptTemplate, code)
}
