package services

import (
	"fmt"
	"regexp"
	"strings"

	"prdgen/internal/helpers"
)

// Story format classifications
const (
	FormatGherkin  = "gherkin"
	FormatBDD      = "bdd"
	FormatFreeForm = "free-form"
)

var (
	qualityGherkin  = regexp.MustCompile(`(?i)As a (.+?), I want (.+?) so that (.+?)(?:\.|$)`)
	qualityCriteria = regexp.MustCompile(`(?i)acceptance criteria?:|ac:`)
	qualityPriority = regexp.MustCompile(`(?i)priority:|prio:`)
	qualityPoints   = regexp.MustCompile(`(?i)story points?:|points?:|sp:`)
)

// ambiguousTerms flag wording that cannot be verified by a test
var ambiguousTerms = []string{"easy", "simple", "quick", "user-friendly", "intuitive"}

// QualityReport scores a single story block and lists what would improve it
type QualityReport struct {
	Score        int          `json:"score"`
	Format       string       `json:"format"`
	Issues       []string     `json:"issues"`
	Suggestions  []string     `json:"suggestions"`
	Completeness Completeness `json:"completeness"`
}

// Completeness records which optional story fields are present
type Completeness struct {
	AcceptanceCriteria bool `json:"acceptance_criteria"`
	Priority           bool `json:"priority"`
	StoryPoints        bool `json:"story_points"`
}

// AnalyzeStoryQuality scores one story block on format and completeness.
// A fully specified Gherkin story with criteria, priority, and points
// scores 80; the remaining headroom is reserved for checks that need
// project context.
func AnalyzeStoryQuality(block string) QualityReport {
	report := QualityReport{Format: FormatFreeForm}
	lower := strings.ToLower(block)

	switch {
	case qualityGherkin.MatchString(block):
		report.Format = FormatGherkin
		report.Score += 30
	case strings.Contains(lower, "given") || strings.Contains(lower, "when") || strings.Contains(lower, "then"):
		report.Format = FormatBDD
		report.Score += 20
	default:
		report.Issues = append(report.Issues, "Consider using Gherkin format (As a... I want... so that...)")
	}

	report.Completeness = Completeness{
		AcceptanceCriteria: qualityCriteria.MatchString(block),
		Priority:           qualityPriority.MatchString(block),
		StoryPoints:        qualityPoints.MatchString(block),
	}

	if report.Completeness.AcceptanceCriteria {
		report.Score += 25
	} else {
		report.Issues = append(report.Issues, "Missing acceptance criteria")
		report.Suggestions = append(report.Suggestions, "Add specific, testable acceptance criteria")
	}

	if report.Completeness.Priority {
		report.Score += 15
	} else {
		report.Suggestions = append(report.Suggestions, "Consider adding priority level (High/Medium/Low)")
	}

	if report.Completeness.StoryPoints {
		report.Score += 10
	} else {
		report.Suggestions = append(report.Suggestions, "Consider adding story points for estimation")
	}

	if len(strings.Fields(block)) < 10 {
		report.Issues = append(report.Issues, "Story may be too brief")
		report.Suggestions = append(report.Suggestions, "Add more context and details")
	}

	var found []string
	for _, term := range ambiguousTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	if len(found) > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf("Ambiguous terms found: %s", strings.Join(found, ", ")))
		report.Suggestions = append(report.Suggestions, "Replace ambiguous terms with specific, measurable criteria")
	}

	return report
}

// SuggestImprovements returns the report's suggestions extended with
// format and project-type guidance
func SuggestImprovements(block, projectType string) []string {
	report := AnalyzeStoryQuality(block)

	var suggestions []string
	if report.Format != FormatGherkin {
		suggestions = append(suggestions,
			"Convert to Gherkin format: 'As a [role], I want [functionality] so that [benefit]'")
	}

	switch {
	case strings.Contains(strings.ToLower(projectType), "mobile"):
		suggestions = append(suggestions, "Consider mobile-specific aspects: touch interactions, offline functionality, performance")
	case strings.Contains(strings.ToLower(projectType), "web"):
		suggestions = append(suggestions, "Consider web-specific aspects: browser compatibility, responsive design, accessibility")
	case strings.Contains(strings.ToLower(projectType), "api"):
		suggestions = append(suggestions, "Consider API-specific aspects: rate limiting, authentication, error handling")
	}

	return append(suggestions, report.Suggestions...)
}

// DisplayQualityReport prints one block's report to the terminal
func DisplayQualityReport(index int, block string, report QualityReport) {
	title := block
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		title = block[:i]
	}

	helpers.PrintTitle("Story %d: %s", index, title)
	helpers.PrintInfo("  Score: %d/100 | Format: %s", report.Score, report.Format)

	for _, issue := range report.Issues {
		helpers.PrintWarning("  %s", issue)
	}
	for _, suggestion := range report.Suggestions {
		helpers.PrintInfo("  💡 %s", suggestion)
	}
}
