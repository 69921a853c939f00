package utils

import (
	"crypto/rand"
	"encoding/hex"
	mathRand "math/rand"
	"time"

	"github.com/google/uuid"
)

// IDGenerator provides centralized ID generation functionality
type IDGenerator struct {
	random *mathRand.Rand
}

// NewIDGenerator creates a new ID generator
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		// #nosec G404 - math/rand is used for non-security-critical ID generation
		random: mathRand.New(mathRand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateRequestID generates a unique request ID (16 hex characters)
func (g *IDGenerator) GenerateRequestID() string {
	return g.generateHex(8)
}

// GenerateCorrelationID generates a UUID for correlation tracking
func (g *IDGenerator) GenerateCorrelationID() string {
	return uuid.New().String()
}

// generateHex generates a random hex string of specified byte length
func (g *IDGenerator) generateHex(byteLength int) string {
	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to math/rand if crypto/rand fails
		for i := range bytes {
			bytes[i] = byte(g.random.Intn(256))
		}
	}
	return hex.EncodeToString(bytes)
}

// Global ID generator instance
var globalIDGenerator = NewIDGenerator()

// GenerateRequestID generates a unique request ID using the global generator
func GenerateRequestID() string {
	return globalIDGenerator.GenerateRequestID()
}

// GenerateCorrelationID generates a correlation ID using the global generator
func GenerateCorrelationID() string {
	return globalIDGenerator.GenerateCorrelationID()
}
