package logger

import (
	"log/slog"
	"strings"
)

// RedactedValue replaces the value of redacted attributes.
const RedactedValue = "[REDACTED]"

// DefaultRedactedKeys are never written in clear text. Keys are compared
// lowercased with "-" folded to "_".
var DefaultRedactedKeys = []string{
	"authorization",
	"cookie",
	"set_cookie",
	"apikey",
	"api_key",
	"access_token",
	"refresh_token",
	"token",
	"service_key",
	"password",
	"secret",
}

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(k), "-", "_")
}

func redactor(keys map[string]struct{}) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if _, ok := keys[normalizeKey(a.Key)]; ok {
			return slog.String(a.Key, RedactedValue)
		}
		return a
	}
}
