// Package redact removes credentials and infrastructure details from strings
// before they are logged or returned in error responses. Store and broker
// errors routinely embed connection URLs, peer addresses and, on the auth
// path, bearer tokens.
package redact

import (
	"log/slog"
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; later rules see the output of earlier ones.
var rules = []rule{
	{
		// Three-part base64url JWT
		pattern:     regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(bearer)\s+[A-Za-z0-9._~+/=-]+`),
		replacement: "${1} " + RedactedTokenPlaceholder,
	},
	{
		// userinfo in connection URLs
		pattern:     regexp.MustCompile(`(?i)\b(redis|rediss|postgres|postgresql|kafka|amqp|mongodb)://[^/\s@]*@`),
		replacement: "${1}://" + RedactedCredentialPlaceholder + "@",
	},
	{
		pattern:     regexp.MustCompile(`(?i)("?(?:password|passwd|pwd|secret)"?\s*[=:]\s*)("[^"]*"|'[^']*'|[^\s&,"'}]+)`),
		replacement: "${1}" + RedactionPlaceholder,
	},
	{
		// host:port where host is an IPv4 address, localhost or a dotted name
		pattern:     regexp.MustCompile(`\b(?:\d{1,3}(?:\.\d{1,3}){3}|localhost|(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}):\d{1,5}\b`),
		replacement: RedactedHostPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Err returns an "error" log attribute carrying the redacted error text.
func Err(err error) slog.Attr {
	return slog.String("error", Error(err))
}
