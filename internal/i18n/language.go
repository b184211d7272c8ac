// Package i18n resolves the request language over the platform's supported
// set. English is the fallback everywhere; Urdu and Arabic are first-class.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

var supportedTags = []language.Tag{
	language.English, // en, also the matcher fallback
	language.Urdu,    // ur
	language.Arabic,  // ar
}

var supportedCodes = []string{"en", "ur", "ar"}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the supported language codes, default first.
func Supported() []string {
	codes := make([]string, len(supportedCodes))
	copy(codes, supportedCodes)
	return codes
}

// IsSupported reports whether code is exactly one of the supported codes.
// Stored preferences are expected in canonical two-letter form.
func IsSupported(code string) bool {
	for _, c := range supportedCodes {
		if c == code {
			return true
		}
	}
	return false
}

// Resolve picks the best supported language for an Accept-Language header.
// The header is parsed as an RFC 4647 weighted list; the first entry that
// matches the supported set wins. Empty or unparseable headers resolve to
// the default, never to an empty string.
func Resolve(acceptLanguage string) string {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return DefaultLanguage
	}

	_, index, _ := matcher.Match(tags...)
	return supportedCodes[index]
}

// Normalize coerces a stored preference to a supported code, falling back to
// the default for anything unknown.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsSupported(code) {
		return code
	}
	return DefaultLanguage
}
