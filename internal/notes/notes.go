// Package notes parses and validates generated release-notes payloads
// against the locale contract.
package notes

// RequiredLocales lists the locale codes every payload must contain.
// The order is fixed; missing locales are reported in this order.
var RequiredLocales = []string{"ja", "en-US", "es-ES", "ko"}

// MaxLocaleLength is the App Store "What's New" ceiling per locale,
// counted in characters.
const MaxLocaleLength = 4000
