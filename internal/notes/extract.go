package notes

import (
	"encoding/json"
	"regexp"
	"strings"
)

// FormatError reports model output with no locatable or parseable JSON
// object.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return e.Reason }

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// ExtractObject locates the JSON object embedded in free-form model
// output and parses it. Markdown code fences are stripped first; the
// object is the substring from the first "{" to the last "}".
func ExtractObject(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = fenceOpen.ReplaceAllString(text, "")
		text = fenceClose.ReplaceAllString(text, "")
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, &FormatError{Reason: "model output did not contain a JSON object"}
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, &FormatError{Reason: "model output JSON is not an object: " + err.Error()}
	}

	return payload, nil
}
