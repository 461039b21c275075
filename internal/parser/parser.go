// Package parser extracts structured user stories from freeform text.
//
// Input is split into blocks separated by blank lines, and each block is
// run through an ordered set of extraction rules. Blocks that yield no
// title or description are skipped silently; parsing never fails.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"prdgen/internal/models"
)

// DefaultPriority is assigned when a block carries no priority label
const DefaultPriority = "Medium"

// maxTitleLen is the cutoff before a derived title is truncated
const maxTitleLen = 100

var (
	gherkinPattern  = regexp.MustCompile(`(?i)As a (.+?), I want (.+?) so that (.+?)(?:\.|$)`)
	criteriaLabel   = regexp.MustCompile(`(?i)(?:Acceptance Criteria:|AC:)\s*(.*)$`)
	criteriaLine    = regexp.MustCompile(`(?i)^(?:Given|When|Then|And)\s+(.+)$`)
	fieldLabelLine  = regexp.MustCompile(`(?i)^(?:Priority:|Prio:|Story Points?:|Points?:|SP:)`)
	priorityPattern = regexp.MustCompile(`(?i)(?:Priority:|Prio:)\s*(\w+)`)
	pointsPattern   = regexp.MustCompile(`(?i)(?:Story Points?:|Points?:|SP:)\s*(\d+)`)
)

// Rule is a named extraction step applied to one story block
type Rule struct {
	Name  string
	Apply func(block string, story *models.UserStory)
}

// rules run in order over each block; later rules never undo earlier ones
var rules = []Rule{
	{Name: "format", Apply: applyFormat},
	{Name: "criteria", Apply: applyCriteria},
	{Name: "priority", Apply: applyPriority},
	{Name: "points", Apply: applyPoints},
}

// Parse extracts user stories from raw text. Stories are returned in the
// order their blocks appear. Malformed blocks are dropped, not reported.
func Parse(rawText string) []models.UserStory {
	var stories []models.UserStory
	for _, block := range SplitBlocks(rawText) {
		if story, ok := parseBlock(block); ok {
			stories = append(stories, story)
		}
	}
	return stories
}

// SplitBlocks segments raw text into story blocks. A line of only
// whitespace ends the current block; runs of blank lines collapse, and a
// trailing block without a final blank line is still included. Lines are
// trimmed and rejoined with single newlines.
func SplitBlocks(rawText string) []string {
	var blocks []string
	var current []string

	for _, line := range strings.Split(strings.TrimSpace(rawText), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	return blocks
}

func parseBlock(block string) (models.UserStory, bool) {
	story := models.UserStory{Priority: DefaultPriority}

	for _, rule := range rules {
		rule.Apply(block, &story)
	}

	if story.Title == "" || story.Description == "" {
		return models.UserStory{}, false
	}
	return story, true
}

// applyFormat detects the story format. A Gherkin match rebuilds the
// narrative in canonical casing with the trailing period dropped;
// otherwise the first line becomes the title and the block itself the
// description.
func applyFormat(block string, story *models.UserStory) {
	if m := gherkinPattern.FindStringSubmatch(block); m != nil {
		role, action, benefit := m[1], m[2], m[3]
		story.Title = "User Story: " + action
		story.Description = "As a " + role + ", I want " + action + " so that " + benefit
		return
	}

	firstLine := block
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		firstLine = block[:i]
	}
	story.Title = truncateTitle(firstLine)
	story.Description = block
}

// applyCriteria collects acceptance criteria from two sources, in this
// fixed order: the lines following an "Acceptance Criteria:" or "AC:"
// label, then every Given/When/Then/And line in the block. Both sources
// may fire on the same block and results are concatenated without
// deduplication. Criteria are trimmed only; bullet markers stay.
func applyCriteria(block string, story *models.UserStory) {
	lines := strings.Split(block, "\n")

	for i, line := range lines {
		m := criteriaLabel.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if rest := strings.TrimSpace(m[1]); rest != "" {
			story.AcceptanceCriteria = append(story.AcceptanceCriteria, rest)
		}
		for _, next := range lines[i+1:] {
			// the labeled run ends at the next label or scenario line
			if next == "" || criteriaLine.MatchString(next) || fieldLabelLine.MatchString(next) {
				break
			}
			story.AcceptanceCriteria = append(story.AcceptanceCriteria, strings.TrimSpace(next))
		}
		break
	}

	for _, line := range lines {
		if m := criteriaLine.FindStringSubmatch(line); m != nil {
			story.AcceptanceCriteria = append(story.AcceptanceCriteria, strings.TrimSpace(m[1]))
		}
	}
}

// applyPriority uses the first priority label in the block; the captured
// word is normalized to first-letter-upper, rest lower.
func applyPriority(block string, story *models.UserStory) {
	if m := priorityPattern.FindStringSubmatch(block); m != nil {
		story.Priority = capitalize(m[1])
	}
}

// applyPoints parses an integer story points label. Absent means nil,
// never zero.
func applyPoints(block string, story *models.UserStory) {
	m := pointsPattern.FindStringSubmatch(block)
	if m == nil {
		return
	}
	points, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}
	story.StoryPoints = &points
}

func truncateTitle(line string) string {
	runes := []rune(line)
	if len(runes) <= maxTitleLen {
		return line
	}
	return string(runes[:maxTitleLen]) + "..."
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
