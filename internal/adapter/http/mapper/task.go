package mapper

import (
	"time"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/domain"
	"workstream/internal/core/taskquery"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID,
		TeamID:     task.TeamID,
		Title:      task.Title,
		Section:    task.Section,
		Completed:  task.Completed,
		Recurrence: string(domain.NormalizeRecurrence(task.Recurrence)),
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.IsAssigned() {
		value := task.Assignee
		item.Assignee = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dateLayout)
		item.DueDate = &value
	}

	return item
}

func ToTaskList(tasks []domain.Task, filters taskquery.Filters) dto.TaskList {
	return dto.TaskList{
		Tasks:         ToTaskItems(tasks),
		Count:         len(tasks),
		FiltersActive: filters.Active(),
	}
}

func ToHistoryItems(entries []domain.HistoryEntry) []dto.HistoryItem {
	items := make([]dto.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.HistoryItem{
			ID:        entry.ID,
			EventType: string(entry.EventType),
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}
