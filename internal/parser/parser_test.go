package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseGherkinStory(t *testing.T) {
	input := "As a tester, I want to run suites so that bugs are caught early."

	stories := Parse(input)
	if len(stories) != 1 {
		t.Fatalf("Parse returned %d stories, want 1", len(stories))
	}

	got := stories[0]
	if got.Title != "User Story: to run suites" {
		t.Errorf("Title = %q, want %q", got.Title, "User Story: to run suites")
	}
	// benefit capture stops before the trailing period
	wantDesc := "As a tester, I want to run suites so that bugs are caught early"
	if got.Description != wantDesc {
		t.Errorf("Description = %q, want %q", got.Description, wantDesc)
	}
	if got.Priority != "Medium" {
		t.Errorf("Priority = %q, want default Medium", got.Priority)
	}
	if got.StoryPoints != nil {
		t.Errorf("StoryPoints = %d, want nil", *got.StoryPoints)
	}
}

func TestParseGherkinCaseInsensitive(t *testing.T) {
	stories := Parse("as a user, i want login so that my data is safe")
	if len(stories) != 1 {
		t.Fatalf("Parse returned %d stories, want 1", len(stories))
	}
	// description is rebuilt with canonical casing
	want := "As a user, I want login so that my data is safe"
	if stories[0].Description != want {
		t.Errorf("Description = %q, want %q", stories[0].Description, want)
	}
}

func TestParseFallbackFormat(t *testing.T) {
	input := "Search improvements\nUsers should be able to filter results by date."

	stories := Parse(input)
	if len(stories) != 1 {
		t.Fatalf("Parse returned %d stories, want 1", len(stories))
	}
	if stories[0].Title != "Search improvements" {
		t.Errorf("Title = %q, want first line", stories[0].Title)
	}
	if stories[0].Description != input {
		t.Errorf("Description = %q, want whole block", stories[0].Description)
	}
}

func TestParseTitleTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)

	stories := Parse(long)
	if len(stories) != 1 {
		t.Fatalf("Parse returned %d stories, want 1", len(stories))
	}
	want := strings.Repeat("x", 100) + "..."
	if stories[0].Title != want {
		t.Errorf("Title length = %d, want 100 chars plus ellipsis", len(stories[0].Title))
	}
	// description keeps the full text
	if stories[0].Description != long {
		t.Errorf("Description was truncated")
	}
}

func TestParseAcceptanceCriteriaSources(t *testing.T) {
	input := "Login feature\nAcceptance Criteria:\n- A\n- B\nGiven X"

	stories := Parse(input)
	if len(stories) != 1 {
		t.Fatalf("Parse returned %d stories, want 1", len(stories))
	}
	// labeled criteria come first with bullet markers retained, then the
	// Given line contributes its remainder
	want := []string{"- A", "- B", "X"}
	if !reflect.DeepEqual(stories[0].AcceptanceCriteria, want) {
		t.Errorf("AcceptanceCriteria = %v, want %v", stories[0].AcceptanceCriteria, want)
	}
}

func TestParseCriteriaLabelVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "AC shorthand",
			input: "Story\nAC:\n- must log in\n- must log out",
			want:  []string{"- must log in", "- must log out"},
		},
		{
			name:  "criteria on label line",
			input: "Story\nAcceptance Criteria: must load fast",
			want:  []string{"must load fast"},
		},
		{
			name:  "lowercase label",
			input: "Story\nacceptance criteria:\n- works offline",
			want:  []string{"- works offline"},
		},
		{
			name:  "labeled run stops at priority label",
			input: "Story\nAC:\n- first\nPriority: High\n",
			want:  []string{"- first"},
		},
		{
			name:  "no criteria",
			input: "Story with no criteria at all",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stories := Parse(tt.input)
			if len(stories) != 1 {
				t.Fatalf("Parse returned %d stories, want 1", len(stories))
			}
			if !reflect.DeepEqual(stories[0].AcceptanceCriteria, tt.want) {
				t.Errorf("AcceptanceCriteria = %v, want %v", stories[0].AcceptanceCriteria, tt.want)
			}
		})
	}
}

func TestParseGherkinWithInlineCriteria(t *testing.T) {
	input := "As a user, I want alerts so that I react fast.\n" +
		"Given an incident occurs\n" +
		"When the threshold is crossed\n" +
		"Then an alert is sent\n" +
		"And it is logged"

	stories := Parse(input)
	if len(stories) != 1 {
		t.Fatalf("Parse returned %d stories, want 1", len(stories))
	}
	// Gherkin format and inline criteria are not mutually exclusive
	if stories[0].Title != "User Story: alerts" {
		t.Errorf("Title = %q", stories[0].Title)
	}
	want := []string{"an incident occurs", "the threshold is crossed", "an alert is sent", "it is logged"}
	if !reflect.DeepEqual(stories[0].AcceptanceCriteria, want) {
		t.Errorf("AcceptanceCriteria = %v, want %v", stories[0].AcceptanceCriteria, want)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "absent defaults to Medium", input: "Story text", want: "Medium"},
		{name: "plain", input: "Story\nPriority: High", want: "High"},
		{name: "prio shorthand", input: "Story\nPrio: low", want: "Low"},
		{name: "uppercase input normalized", input: "Story\nPriority: HIGH", want: "High"},
		{name: "mixed case normalized", input: "Story\npriority: cRiTiCal", want: "Critical"},
		{name: "first label wins", input: "Story\nPriority: High\nPriority: Low", want: "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stories := Parse(tt.input)
			if len(stories) != 1 {
				t.Fatalf("Parse returned %d stories, want 1", len(stories))
			}
			if stories[0].Priority != tt.want {
				t.Errorf("Priority = %q, want %q", stories[0].Priority, tt.want)
			}
		})
	}
}

func TestParseStoryPoints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "absent is nil", input: "Story text", want: nil},
		{name: "story points label", input: "Story\nStory Points: 5", want: intPtr(5)},
		{name: "singular label", input: "Story\nStory Point: 3", want: intPtr(3)},
		{name: "points label", input: "Story\nPoints: 8", want: intPtr(8)},
		{name: "sp shorthand", input: "Story\nSP: 13", want: intPtr(13)},
		{name: "zero is kept", input: "Story\nSP: 0", want: intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stories := Parse(tt.input)
			if len(stories) != 1 {
				t.Fatalf("Parse returned %d stories, want 1", len(stories))
			}
			got := stories[0].StoryPoints
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("StoryPoints = %d, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("StoryPoints = nil, want %d", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("StoryPoints = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestParseOrderPreservation(t *testing.T) {
	input := "First story\n\nSecond story\n\nThird story"

	stories := Parse(input)
	if len(stories) != 3 {
		t.Fatalf("Parse returned %d stories, want 3", len(stories))
	}
	for i, want := range []string{"First story", "Second story", "Third story"} {
		if stories[i].Title != want {
			t.Errorf("stories[%d].Title = %q, want %q", i, stories[i].Title, want)
		}
	}
}

func TestSegmentationIdempotence(t *testing.T) {
	minimal := "First story\n\nSecond story"
	padded := "\n\n\nFirst story\n\n\n\n   \nSecond story\n\n\n"

	if !reflect.DeepEqual(Parse(minimal), Parse(padded)) {
		t.Error("extra blank-line padding changed the parse result")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n", " \n \n "} {
		if got := Parse(input); len(got) != 0 {
			t.Errorf("Parse(%q) returned %d stories, want 0", input, len(got))
		}
	}
}

func TestSplitBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single block",
			input: "line one\nline two",
			want:  []string{"line one\nline two"},
		},
		{
			name:  "blank line separates",
			input: "a\n\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "consecutive blanks collapse",
			input: "a\n\n\n\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "whitespace-only line terminates",
			input: "a\n   \nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "trailing block without blank line",
			input: "a\n\nb\nc",
			want:  []string{"a", "b\nc"},
		},
		{
			name:  "lines are trimmed",
			input: "  a  \n\tb\t",
			want:  []string{"a\nb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitBlocks(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitBlocks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func intPtr(n int) *int {
	return &n
}
