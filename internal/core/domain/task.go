package domain

import "time"

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// NormalizeRecurrence maps the empty value to RecurrenceNone.
func NormalizeRecurrence(r Recurrence) Recurrence {
	if r == "" {
		return RecurrenceNone
	}
	return r
}

func (r Recurrence) Valid() bool {
	switch NormalizeRecurrence(r) {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

type Task struct {
	ID          string
	TeamID      string
	Title       string
	Description *string
	Section     string
	Assignee    string
	DueDate     *time.Time
	Completed   bool
	Recurrence  Recurrence
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) IsAssigned() bool {
	return t.Assignee != ""
}

type HistoryEventType string

const (
	HistoryCreated   HistoryEventType = "created"
	HistoryUpdated   HistoryEventType = "updated"
	HistoryCompleted HistoryEventType = "completed"
	HistoryReopened  HistoryEventType = "reopened"
)

type HistoryEntry struct {
	ID        string
	TaskID    string
	EventType HistoryEventType
	Details   string
	CreatedAt time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Section     string
	Assignee    string
	DueDate     *time.Time
	Recurrence  Recurrence
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish an
// omitted field from one explicitly cleared.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Section        *string
	Assignee       *string
	DueDate        *time.Time
	DueDateSet     bool
	Recurrence     *Recurrence
}
