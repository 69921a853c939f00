package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// GenerateDocsRequest is the inbound body for the documentation endpoint
type GenerateDocsRequest struct {
	Code string `json:"code" validate:"required"`
}

var validate *playground.Validate

func init() {
	validate = playground.New()
}

// ValidateGenerateDocsRequest parses and validates the request body. The code
// field must be present and non-blank; validation happens before any provider
// is contacted.
func ValidateGenerateDocsRequest(body []byte) (*GenerateDocsRequest, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("No code provided")
	}

	var request GenerateDocsRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, fmt.Errorf("invalid request format: %v", err)
	}

	if strings.TrimSpace(request.Code) == "" {
		return nil, fmt.Errorf("No code provided")
	}

	if err := validate.Struct(&request); err != nil {
		return nil, fmt.Errorf("No code provided")
	}

	return &request, nil
}
