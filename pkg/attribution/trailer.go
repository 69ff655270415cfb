package attribution

import (
	"regexp"
	"strings"
)

// Trailer names recognized by the attribution pipeline. Lookup is
// case-insensitive.
const (
	TrailerAITool       = "AI-Tool"
	TrailerAIAssisted   = "AI-Assisted"
	TrailerAIConfidence = "AI-Confidence"
)

// trailerPattern matches one `Key: value` trailer line. The key is an
// identifier starting with a letter, containing letters, digits and hyphens.
var trailerPattern = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z0-9-]*):\s*(.+)$`)

// ExtractTrailers parses the trailer block of a commit message. Trailers are
// assumed to live in the last blank-line-separated paragraph of the message;
// trailers interleaved with body text are not found. Keys keep
// their original case and the last occurrence of a repeated key wins.
// Malformed input yields an empty map, never an error.
func ExtractTrailers(message string) map[string]string {
	trailers := map[string]string{}

	paragraphs := strings.Split(message, "\n\n")
	if len(paragraphs) == 0 {
		return trailers
	}

	lastParagraph := paragraphs[len(paragraphs)-1]

	for _, match := range trailerPattern.FindAllStringSubmatch(lastParagraph, -1) {
		trailers[match[1]] = strings.TrimSpace(match[2])
	}

	return trailers
}

// LookupTrailer returns the value of the named trailer, matching the key
// case-insensitively.
func LookupTrailer(trailers map[string]string, name string) (string, bool) {
	for key, value := range trailers {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}

	return "", false
}

// IsAssisted decides whether the trailer map marks a commit as AI-assisted.
// An AI-Assisted trailer wins when present: true iff its value is
// "true", "yes" or "1" (case-insensitive). Otherwise an AI-Tool trailer
// implies assistance unless its value is "none" or "false". With neither
// trailer present the commit is not assisted.
func IsAssisted(trailers map[string]string) bool {
	if value, ok := LookupTrailer(trailers, TrailerAIAssisted); ok {
		normalized := strings.ToLower(value)

		return normalized == "true" || normalized == "yes" || normalized == "1"
	}

	if value, ok := LookupTrailer(trailers, TrailerAITool); ok {
		normalized := strings.ToLower(value)

		return normalized != "none" && normalized != "false"
	}

	return false
}

// ClassifyTool extracts the tool identity from the trailer map. It is
// computed independently of IsAssisted: a missing AI-Tool trailer yields
// ToolNone regardless of how assistance was determined.
func ClassifyTool(trailers map[string]string) Tool {
	value, ok := LookupTrailer(trailers, TrailerAITool)
	if !ok {
		return ToolNone
	}

	return ParseTool(value)
}

// Confidence returns the free-form AI-Confidence trailer value, or the empty
// string when absent.
func Confidence(trailers map[string]string) string {
	value, _ := LookupTrailer(trailers, TrailerAIConfidence)

	return value
}
