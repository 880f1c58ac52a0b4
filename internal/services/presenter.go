package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/smart-talent/internal/models"
)

// Field maps a response key to a display section.
type Field struct {
	DisplayName string
	Key         string
	Default     any
}

const (
	keyJDMatch                    = "JD Match"
	keyMissingKeywords            = "MissingKeywords"
	keySuggestedSkills            = "SuggestedSkills"
	keyStrengths                  = "Strengths"
	keyAreasForImprovement        = "Areas for Improvement"
	keyFormattingRecommendations  = "FormattingRecommendations"
	keyProfileSummary             = "ProfileSummary"
	keyCertificateRecommendations = "CertificateRecommendations"
)

// ATSFields is the display order of the ATS result page. Keys keep the
// casing the ATS prompt asks for, spaces included.
var ATSFields = []Field{
	{DisplayName: "Missing Keywords", Key: keyMissingKeywords, Default: []string{}},
	{DisplayName: "Suggested Skills", Key: keySuggestedSkills, Default: []string{}},
	{DisplayName: "Strengths", Key: keyStrengths, Default: "No strengths identified."},
	{DisplayName: "Areas for Improvement", Key: keyAreasForImprovement, Default: "No areas identified."},
	{DisplayName: "Formatting Recommendations", Key: keyFormattingRecommendations, Default: "No recommendations."},
	{DisplayName: "Profile Summary", Key: keyProfileSummary, Default: "No summary available."},
	{DisplayName: "Certificate Recommendations", Key: keyCertificateRecommendations, Default: []string{}},
}

const listDelimiter = ", "

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Present renders each field from mapping, substituting the default when the
// key is absent or null. A nil mapping renders every default.
func Present(mapping map[string]any, fields []Field) []models.Section {
	sections := make([]models.Section, 0, len(fields))
	for _, field := range fields {
		value, ok := mapping[field.Key]
		if !ok || value == nil {
			value = field.Default
		}
		sections = append(sections, models.Section{
			Title:   field.DisplayName,
			Content: renderValue(value),
		})
	}
	return sections
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, listDelimiter)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, renderValue(item))
		}
		return strings.Join(parts, listDelimiter)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// NormalizeMatchPercentage strips everything but digits and dots and parses
// the rest. Anything unparsable is 0.
func NormalizeMatchPercentage(value any) float64 {
	var raw string
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case string:
		raw = v
	default:
		raw = fmt.Sprint(v)
	}

	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}

	score, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return score
}

// ProgressValue clamps a score to the progress bar range.
func ProgressValue(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

// ToEvaluationResult reads the ATS mapping into its typed form, defaults included.
func ToEvaluationResult(mapping map[string]any) models.EvaluationResult {
	matchValue, ok := mapping[keyJDMatch]
	if !ok || matchValue == nil {
		matchValue = "0"
	}

	return models.EvaluationResult{
		MatchPercentage:            NormalizeMatchPercentage(matchValue),
		MissingKeywords:            stringList(mapping[keyMissingKeywords]),
		Strengths:                  stringOr(mapping[keyStrengths], "No strengths identified."),
		AreasForImprovement:        stringOr(mapping[keyAreasForImprovement], "No areas identified."),
		SuggestedSkills:            stringList(mapping[keySuggestedSkills]),
		FormattingRecommendations:  stringOr(mapping[keyFormattingRecommendations], "No recommendations."),
		ProfileSummary:             stringOr(mapping[keyProfileSummary], "No summary available."),
		CertificateRecommendations: stringList(mapping[keyCertificateRecommendations]),
	}
}

func stringList(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, renderValue(item))
		}
		return out
	case []string:
		return v
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{}
	}
}

func stringOr(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	return renderValue(value)
}
