package provider

// Outcome is the tagged result every provider call is reduced to: either the
// generated text or a human-readable failure message. Provider clients never
// return errors past their boundary; every failure path becomes a Failure
// outcome and the HTTP handler alone maps outcomes to status codes.
type Outcome struct {
	OK   bool
	Text string
}

// Success returns a successful outcome carrying the generated text
func Success(text string) Outcome {
	return Outcome{OK: true, Text: text}
}

// Failure returns a failed outcome carrying the failure message
func Failure(message string) Outcome {
	return Outcome{OK: false, Text: message}
}
