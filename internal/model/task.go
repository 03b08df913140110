package model

import "time"

// TaskStatus is task progress state
type TaskStatus string

const (
	// TaskStatusPending is initial task status
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress means task is being done
	TaskStatusInProgress TaskStatus = "in-progress"
	// TaskStatusCompleted means task is done
	TaskStatusCompleted TaskStatus = "completed"
)

// Valid reports whether task status is known
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress || s == TaskStatusCompleted
}

// Task is task model entity
type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description *string    `json:"description" bson:"description"`
	Priority    Priority   `json:"priority" bson:"priority"`
	Status      TaskStatus `json:"status" bson:"status"`
	AssignedTo  string     `json:"assignedTo" bson:"assignedTo"`
	EndDate     time.Time  `json:"endDate" bson:"endDate"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// TaskPatch contains task fields to change, nil fields are kept as is
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *TaskStatus
	AssignedTo  *string
	EndDate     *time.Time
}

// Merge applies patch to task
func (t *Task) Merge(p *TaskPatch, at time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}

	if p.Description != nil {
		d := *p.Description
		t.Description = &d
	}

	if p.Priority != nil {
		t.Priority = *p.Priority
	}

	if p.Status != nil {
		t.Status = *p.Status
	}

	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}

	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	t.UpdatedAt = at
}

// TaskFilter narrows tasks lookup, zero values are ignored
type TaskFilter struct {
	AssignedTo string
	Status     TaskStatus
}
