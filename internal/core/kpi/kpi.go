// Package kpi aggregates completion statistics for a team or a single user.
package kpi

import (
	"slices"

	"workstream/internal/core/domain"
)

// DefaultTopN is the number of contributors shown on the team screen.
const DefaultTopN = 3

type Display string

const (
	DisplayNoTasks      Display = "no_tasks"
	DisplayAllCompleted Display = "all_completed"
	DisplayInProgress   Display = "in_progress"
)

// Summary holds the completion counters of a task set. Progress and Display
// are computed independently: Progress is 1 both when every task is done and
// when there are no tasks at all.
type Summary struct {
	Completed  int
	Remaining  int
	Progress   float64
	Percentage int
	Display    Display
}

func (s Summary) Total() int {
	return s.Completed + s.Remaining
}

type Contributor struct {
	User      domain.User
	Completed int
}

type Team struct {
	Summary
	TopContributors []Contributor
}

// Summarize counts completed and remaining tasks.
func Summarize(tasks []domain.Task) Summary {
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return newSummary(completed, len(tasks)-completed)
}

func newSummary(completed, remaining int) Summary {
	total := completed + remaining
	summary := Summary{
		Completed:  completed,
		Remaining:  remaining,
		Progress:   1,
		Percentage: 100,
	}
	if remaining > 0 {
		summary.Progress = float64(completed) / float64(total)
		// Integer arithmetic truncates toward zero without float rounding noise.
		summary.Percentage = completed * 100 / total
	}

	switch {
	case total == 0:
		summary.Display = DisplayNoTasks
	case summary.Percentage == 100:
		summary.Display = DisplayAllCompleted
	default:
		summary.Display = DisplayInProgress
	}
	return summary
}

// Compute returns the team summary and its top DefaultTopN contributors.
func Compute(tasks []domain.Task, members []domain.User) Team {
	return Team{
		Summary:         Summarize(tasks),
		TopContributors: TopContributors(tasks, members, DefaultTopN),
	}
}

// TopContributors orders members by descending number of completed tasks
// assigned to them and keeps the first n. Ties keep member order and members
// with no completed task remain eligible.
func TopContributors(tasks []domain.Task, members []domain.User, n int) []Contributor {
	if n <= 0 || len(members) == 0 {
		return []Contributor{}
	}

	completedBy := make(map[string]int, len(members))
	for _, task := range tasks {
		if task.Completed && task.IsAssigned() {
			completedBy[task.Assignee]++
		}
	}

	contributors := make([]Contributor, 0, len(members))
	for _, member := range members {
		contributors = append(contributors, Contributor{User: member, Completed: completedBy[member.Email]})
	}
	slices.SortStableFunc(contributors, func(a, b Contributor) int {
		return b.Completed - a.Completed
	})

	if len(contributors) > n {
		contributors = contributors[:n]
	}
	return contributors
}

type Personal struct {
	Summary
	Teams int
}

// ComputePersonal summarizes the tasks of user within tasks.
func ComputePersonal(tasks []domain.Task, user domain.User) Personal {
	completed, remaining := 0, 0
	for _, task := range tasks {
		if task.Assignee != user.Email {
			continue
		}
		if task.Completed {
			completed++
		} else {
			remaining++
		}
	}
	return Personal{
		Summary: newSummary(completed, remaining),
		Teams:   len(user.Teams),
	}
}
