package dto

type TaskItem struct {
	ID          string  `json:"id"`
	TeamID      string  `json:"team_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Section     string  `json:"section"`
	Assignee    *string `json:"assignee,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Completed   bool    `json:"completed"`
	Recurrence  string  `json:"recurrence"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TaskList struct {
	Tasks         []TaskItem `json:"tasks"`
	Count         int        `json:"count"`
	FiltersActive bool       `json:"filters_active"`
}

type HistoryItem struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Section     *string `json:"section" binding:"omitempty,max=100"`
	Assignee    *string `json:"assignee" binding:"omitempty,max=255"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Recurrence  *string `json:"recurrence" binding:"omitempty,oneof=none daily weekly monthly"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Section     *string `json:"section" binding:"omitempty,max=100"`
	Assignee    *string `json:"assignee" binding:"omitempty,max=255"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Recurrence  *string `json:"recurrence" binding:"omitempty,oneof=none daily weekly monthly"`
}
