package taskquery

import "strings"

type SortOrder string

const (
	SortByTitle       SortOrder = "title"
	SortByDueDateAsc  SortOrder = "due-date-ascending"
	SortByDueDateDesc SortOrder = "due-date-descending"
	SortBySection     SortOrder = "section"
	SortByStatus      SortOrder = "status"
)

const DefaultSortOrder = SortByTitle

// SortOrders lists the recognized orders in the order clients display them.
var SortOrders = []SortOrder{SortByTitle, SortByDueDateAsc, SortByDueDateDesc, SortBySection, SortByStatus}

type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusComplete   StatusFilter = "complete"
	StatusIncomplete StatusFilter = "incomplete"
)

// Filters holds the optional predicates. An empty slice means "all".
type Filters struct {
	Sections    []string
	Assignees   []string
	Status      StatusFilter
	Recurrences []string
}

// Active reports whether at least one predicate narrows the list.
func (f Filters) Active() bool {
	return len(f.Sections) > 0 ||
		len(f.Assignees) > 0 ||
		len(f.Recurrences) > 0 ||
		(f.Status != "" && f.Status != StatusAll)
}

type Params struct {
	Search  string
	Sort    SortOrder
	Filters Filters
	// PersonalUserID restricts the result to tasks assigned to this user.
	PersonalUserID string
}

// ParseSortOrder returns the matching order or DefaultSortOrder.
func ParseSortOrder(value string) SortOrder {
	normalized := SortOrder(strings.ToLower(strings.TrimSpace(value)))
	for _, order := range SortOrders {
		if order == normalized {
			return order
		}
	}
	return DefaultSortOrder
}

// ParseStatusFilter returns the matching status or StatusAll.
func ParseStatusFilter(value string) StatusFilter {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(value))) {
	case StatusComplete:
		return StatusComplete
	case StatusIncomplete:
		return StatusIncomplete
	default:
		return StatusAll
	}
}

// ParseMultiSelect trims the values and drops blanks. The literal "all"
// anywhere in the list disables the predicate.
func ParseMultiSelect(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, string(StatusAll)) {
			return nil
		}
		result = append(result, trimmed)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
