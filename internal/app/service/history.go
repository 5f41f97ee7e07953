package service

import (
	"fmt"
	"strings"
	"time"

	"workstream/internal/core/domain"
)

func formatCreatedDetails(task domain.Task) string {
	return "created: " + formatSnapshot(task)
}

// formatToggleDetails records the full state before and after a completion
// toggle.
func formatToggleDetails(before, after domain.Task) string {
	return fmt.Sprintf("before: %s | after: %s", formatSnapshot(before), formatSnapshot(after))
}

func formatSnapshot(task domain.Task) string {
	return fmt.Sprintf(
		"title='%s' section='%s' assignee=%s due=%s completed=%t recurrence=%s",
		task.Title,
		task.Section,
		valueOrNone(task.Assignee),
		formatDue(task.DueDate),
		task.Completed,
		domain.NormalizeRecurrence(task.Recurrence),
	)
}

func formatTaskDiff(before, after domain.Task) string {
	changes := []string{}
	if before.Title != after.Title {
		changes = append(changes, formatChange("title", before.Title, after.Title))
	}
	if derefString(before.Description) != derefString(after.Description) {
		changes = append(changes, formatChange("description", derefString(before.Description), derefString(after.Description)))
	}
	if before.Section != after.Section {
		changes = append(changes, formatChange("section", before.Section, after.Section))
	}
	if before.Assignee != after.Assignee {
		changes = append(changes, formatChange("assignee", before.Assignee, after.Assignee))
	}
	if formatDue(before.DueDate) != formatDue(after.DueDate) {
		changes = append(changes, formatChange("due", formatDue(before.DueDate), formatDue(after.DueDate)))
	}
	beforeRecurrence := string(domain.NormalizeRecurrence(before.Recurrence))
	afterRecurrence := string(domain.NormalizeRecurrence(after.Recurrence))
	if beforeRecurrence != afterRecurrence {
		changes = append(changes, formatChange("recurrence", beforeRecurrence, afterRecurrence))
	}

	if len(changes) == 0 {
		return "updated: no changes"
	}

	return "updated: " + strings.Join(changes, "; ")
}

func formatChange(field, before, after string) string {
	return fmt.Sprintf("%s: '%s' -> '%s'", field, valueOrNone(before), valueOrNone(after))
}

func valueOrNone(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "none"
	}
	return trimmed
}

func formatDue(value *time.Time) string {
	if value == nil {
		return "none"
	}
	return value.Format("2006-01-02")
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
