package notes

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError reports required locales that are missing, not
// strings, or blank after trimming. All offenders are collected before
// failing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing locale(s): " + strings.Join(e.Missing, ", ")
}

// LengthError reports a locale whose trimmed text exceeds
// MaxLocaleLength. Unlike missing locales, the first offender aborts
// validation immediately.
type LengthError struct {
	Locale string
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("release note for %s exceeds %d characters (got %d)", e.Locale, MaxLocaleLength, e.Length)
}

// Validate checks the payload against the locale contract and returns
// the mapping of exactly the required locales to their trimmed values.
// Extra keys are dropped.
func Validate(payload map[string]any) (map[string]string, error) {
	validated := make(map[string]string, len(RequiredLocales))
	var missing []string

	for _, locale := range RequiredLocales {
		value, ok := payload[locale].(string)
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, locale)
			continue
		}

		text := strings.TrimSpace(value)
		if n := utf8.RuneCountInString(text); n > MaxLocaleLength {
			return nil, &LengthError{Locale: locale, Length: n}
		}
		validated[locale] = text
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	return validated, nil
}
