package domain

import "time"

type Task struct {
	ID           uint64
	Title        string
	AssignedUser string
	DueDate      time.Time
	IsCompleted  bool
	ProjectID    uint64
}

// TaskInput carries task fields without an identity. Project edits replace
// the whole task list, so incoming tasks never reference existing rows.
type TaskInput struct {
	Title        string
	AssignedUser string
	DueDate      time.Time
	IsCompleted  bool
}
