// Package taskquery derives the ordered, filtered task list shown to a
// client from a snapshot of a team's tasks. Everything here is pure: the
// input slice is never modified and a new slice is always returned.
package taskquery

import (
	"slices"
	"strings"

	"workstream/internal/core/domain"
)

// Query filters and sorts tasks according to params.
func Query(tasks []domain.Task, params Params) []domain.Task {
	search := strings.ToLower(strings.TrimSpace(params.Search))

	result := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if params.PersonalUserID != "" && task.Assignee != params.PersonalUserID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(task.Title), search) {
			continue
		}
		if !Match(task, params.Filters) {
			continue
		}
		result = append(result, task)
	}

	Sort(result, params.Sort)
	return result
}

// OfUser returns the tasks assigned to userID, sorted by order.
func OfUser(tasks []domain.Task, userID string, order SortOrder) []domain.Task {
	return Query(tasks, Params{Sort: order, PersonalUserID: userID})
}

// Match reports whether task satisfies every active predicate in filters.
func Match(task domain.Task, filters Filters) bool {
	if len(filters.Sections) > 0 && !slices.Contains(filters.Sections, task.Section) {
		return false
	}
	if len(filters.Assignees) > 0 && !slices.Contains(filters.Assignees, task.Assignee) {
		return false
	}
	if len(filters.Recurrences) > 0 && !matchRecurrence(task.Recurrence, filters.Recurrences) {
		return false
	}

	switch filters.Status {
	case StatusComplete:
		return task.Completed
	case StatusIncomplete:
		return !task.Completed
	default:
		return true
	}
}

func matchRecurrence(value domain.Recurrence, allowed []string) bool {
	normalized := domain.NormalizeRecurrence(value)
	for _, candidate := range allowed {
		if strings.EqualFold(string(domain.NormalizeRecurrence(domain.Recurrence(candidate))), string(normalized)) {
			return true
		}
	}
	return false
}

// Sort orders tasks in place. The sort is stable, so tasks with equal keys
// keep their relative input order. Unknown orders sort by title.
func Sort(tasks []domain.Task, order SortOrder) {
	slices.SortStableFunc(tasks, comparator(order))
}

func comparator(order SortOrder) func(a, b domain.Task) int {
	switch order {
	case SortByDueDateAsc:
		return func(a, b domain.Task) int { return compareDueDates(a, b, false) }
	case SortByDueDateDesc:
		return func(a, b domain.Task) int { return compareDueDates(a, b, true) }
	case SortBySection:
		return func(a, b domain.Task) int { return compareFold(a.Section, b.Section) }
	case SortByStatus:
		return compareStatus
	default:
		return func(a, b domain.Task) int { return compareFold(a.Title, b.Title) }
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareDueDates keeps tasks without a due date at the end whatever the
// direction.
func compareDueDates(a, b domain.Task, descending bool) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}

	cmp := a.DueDate.Compare(*b.DueDate)
	if descending {
		return -cmp
	}
	return cmp
}

// compareStatus puts incomplete tasks first.
func compareStatus(a, b domain.Task) int {
	switch {
	case a.Completed == b.Completed:
		return 0
	case !a.Completed:
		return -1
	default:
		return 1
	}
}

// Assignees returns the distinct assignees of tasks in first-seen order,
// skipping unassigned tasks. Clients use it to build the assignee filter.
func Assignees(tasks []domain.Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	result := make([]string, 0)
	for _, task := range tasks {
		if !task.IsAssigned() {
			continue
		}
		if _, ok := seen[task.Assignee]; ok {
			continue
		}
		seen[task.Assignee] = struct{}{}
		result = append(result, task.Assignee)
	}
	return result
}
