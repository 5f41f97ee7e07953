package validation

import (
	"net/url"

	"workstream/internal/core/taskquery"
)

// BuildTaskQueryParams reads the list query string. Unknown sort orders and
// status values fall back to their defaults instead of failing the request.
func BuildTaskQueryParams(values url.Values) taskquery.Params {
	return taskquery.Params{
		Search: values.Get("search"),
		Sort:   taskquery.ParseSortOrder(values.Get("sort")),
		Filters: taskquery.Filters{
			Sections:    taskquery.ParseMultiSelect(values["section"]),
			Assignees:   taskquery.ParseMultiSelect(values["assignee"]),
			Status:      taskquery.ParseStatusFilter(values.Get("status")),
			Recurrences: taskquery.ParseMultiSelect(values["recurrence"]),
		},
	}
}
