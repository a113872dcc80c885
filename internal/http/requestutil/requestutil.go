package requestutil

import (
	"encoding/hex"
	"net/http"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
var useFallback atomic.Bool

// SanitizeRequestID validates the incoming request ID header and generates a new one when invalid.
func SanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID generates a random UUID request ID with a time-based fallback.
func NewRequestID() string {
	if !useFallback.Load() {
		if id, err := uuid.NewRandom(); err == nil {
			return id.String()
		}
	}
	return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
}

// ClientIP extracts the client IP from X-Forwarded-For or RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
		return forwarded
	}
	return r.RemoteAddr
}
