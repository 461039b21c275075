// Package generator assembles parsed user stories and project metadata
// into the fixed eight-section PRD.
package generator

import (
	"fmt"
	"strings"

	"prdgen/internal/models"
)

// Generate builds the PRD sections for the given stories and project
// metadata. The eight sections are always emitted in the same order,
// even for an empty story list. Apart from the current-date fallback in
// the project metadata, output is fully determined by the inputs.
func Generate(stories []models.UserStory, info models.ProjectInfo) []models.PRDSection {
	info = info.WithDefaults()

	return []models.PRDSection{
		{Title: "Project Information", Content: projectInformation(info)},
		{Title: "Executive Summary", Content: executiveSummary(stories, info)},
		{Title: "Product Overview", Content: productOverview(info)},
		{Title: "User Stories and Requirements", Content: userStories(stories)},
		{Title: "Functional Requirements", Content: functionalRequirements(stories)},
		{Title: "Acceptance Criteria", Content: acceptanceCriteria(stories)},
		{Title: "Assumptions and Constraints", Content: assumptions()},
		{Title: "Success Metrics", Content: successMetrics()},
	}
}

func projectInformation(info models.ProjectInfo) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Project Title: %s\n", info.Title))
	b.WriteString(fmt.Sprintf("Author: %s\n", info.Author))
	b.WriteString(fmt.Sprintf("Date: %s\n", info.Date))
	b.WriteString(fmt.Sprintf("Version: %s\n", info.Version))
	b.WriteString(fmt.Sprintf("Status: %s\n", info.Status))
	b.WriteString(fmt.Sprintf("Target Release: %s", info.TargetRelease))

	return b.String()
}

func executiveSummary(stories []models.UserStory, info models.ProjectInfo) string {
	totalStories := len(stories)
	highPriority := 0
	for _, story := range stories {
		if strings.EqualFold(story.Priority, "high") {
			highPriority++
		}
	}

	return fmt.Sprintf(`This Product Requirements Document outlines the requirements for %s.

The product addresses key user needs through %d user stories, with %d high-priority features identified. This document serves as the primary reference for development teams, stakeholders, and project managers throughout the product development lifecycle.

Key objectives:
- Deliver user-centered features based on identified user stories
- Ensure clear requirements and acceptance criteria
- Provide measurable success metrics
- Establish development timeline and constraints`, info.Title, totalStories, highPriority)
}

func productOverview(info models.ProjectInfo) string {
	return fmt.Sprintf(`Product Vision: %s

Target Users: Based on the user stories, the primary users include various personas who require the functionality described in the requirements.

Core Value Proposition: The product will deliver value by addressing specific user needs as outlined in the user stories section.

Scope: This PRD covers the features and functionality derived from the provided user stories and their associated acceptance criteria.`, info.Vision)
}

func userStories(stories []models.UserStory) string {
	var b strings.Builder
	b.WriteString("The following user stories define the core requirements for this product:\n\n")

	for i, story := range stories {
		b.WriteString(fmt.Sprintf("US%03d: %s\n", i+1, story.Title))
		b.WriteString(fmt.Sprintf("Description: %s\n", story.Description))
		b.WriteString(fmt.Sprintf("Priority: %s\n", story.Priority))
		if story.StoryPoints != nil {
			b.WriteString(fmt.Sprintf("Story Points: %d\n", *story.StoryPoints))
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func functionalRequirements(stories []models.UserStory) string {
	var b strings.Builder
	b.WriteString("Based on the user stories, the following functional requirements have been identified:\n\n")

	for i, story := range stories {
		b.WriteString(fmt.Sprintf("FR%03d: %s\n", i+1, story.Title))
		b.WriteString(fmt.Sprintf("The system shall implement functionality to: %s\n", story.Description))
		b.WriteString(fmt.Sprintf("Priority Level: %s\n\n", story.Priority))
	}

	return strings.TrimSpace(b.String())
}

func acceptanceCriteria(stories []models.UserStory) string {
	var b strings.Builder
	b.WriteString("Acceptance criteria for each user story:\n\n")

	// index follows the story's position in the input, so US numbers stay
	// consistent with the previous sections even when stories are skipped
	for i, story := range stories {
		if !story.HasCriteria() {
			continue
		}
		b.WriteString(fmt.Sprintf("US%03d - %s:\n", i+1, story.Title))
		for j, criterion := range story.AcceptanceCriteria {
			b.WriteString(fmt.Sprintf("  AC%03d.%d: %s\n", i+1, j+1, criterion))
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func assumptions() string {
	return `The following assumptions are made for this product development:

1. Technical infrastructure and development resources are available
2. User stories represent validated user needs
3. Acceptance criteria are complete and testable
4. Dependencies with external systems are manageable
5. Timeline estimates are based on standard development practices

These assumptions should be validated and updated as the project progresses.`
}

func successMetrics() string {
	return `Success will be measured using the following metrics:

1. Feature Completion Rate: Percentage of user stories successfully implemented
2. Acceptance Criteria Pass Rate: Percentage of acceptance criteria met
3. User Satisfaction: To be measured through user feedback and testing
4. Performance Metrics: Response time, uptime, and system reliability
5. Adoption Metrics: User engagement and feature utilization

Specific targets and measurement methods should be defined during the planning phase.`
}
