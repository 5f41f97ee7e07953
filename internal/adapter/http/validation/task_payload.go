package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "recurrence") && req.Recurrence == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Recurrence:  domain.RecurrenceNone,
	}

	if req.Section != nil {
		input.Section = strings.TrimSpace(*req.Section)
	}
	if req.Assignee != nil {
		input.Assignee = strings.TrimSpace(*req.Assignee)
	}

	if req.DueDate != nil {
		parsedDueDate, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &parsedDueDate
	}

	if req.Recurrence != nil {
		recurrence := domain.Recurrence(*req.Recurrence)
		if !recurrence.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Recurrence = domain.NormalizeRecurrence(recurrence)
	}

	return input, nil
}

// BuildUpdateTaskInput maps a partial update. A JSON null clears description,
// assignee and due date; it is rejected for the other fields.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "section") && req.Section == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Section != nil {
		value := strings.TrimSpace(*req.Section)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Section = &value
	}

	input.DescriptionSet = hasJSONField(raw, "description")
	if input.DescriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	input.Description = req.Description

	if hasJSONField(raw, "assignee") {
		value := ""
		if req.Assignee != nil {
			value = strings.TrimSpace(*req.Assignee)
		} else if !isJSONNull(raw["assignee"]) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Assignee = &value
	}

	input.DueDateSet = hasJSONField(raw, "due_date")
	if input.DueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDueDate, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &parsedDueDate
	}

	if hasJSONField(raw, "recurrence") && req.Recurrence == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Recurrence != nil {
		recurrence := domain.Recurrence(*req.Recurrence)
		if !recurrence.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		recurrence = domain.NormalizeRecurrence(recurrence)
		input.Recurrence = &recurrence
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "section") ||
		hasJSONField(raw, "assignee") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "recurrence")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
