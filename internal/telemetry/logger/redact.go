package logger

import (
	"log/slog"
	"strings"
)

// Key patterns whose string values must never reach the log output.
// Login payloads carry the client token and profile objects carry the
// password hash, both under predictable key names.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"pwd",
	"secret",
	"token",
	"credential",
	"auth",
	"bearer",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive replaces the value of any credential-looking
// attribute, recursing into groups.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		if IsSensitiveKey(a.Key) && a.Value.String() != "" {
			return slog.String(a.Key, redactedValue)
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// MaskToken shortens a login token for logging, keeping just enough to
// correlate with other systems.
func MaskToken(token string) string {
	if len(token) <= 6 {
		return "***"
	}
	return token[:3] + "..." + token[len(token)-3:]
}

// IsSensitiveKey checks if a key name suggests credential content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
