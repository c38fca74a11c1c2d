package models

import "time"

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether the given string is a known status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPriority orders tasks in the work queue.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ValidTaskPriority reports whether the given string is a known priority.
func ValidTaskPriority(p string) bool {
	switch TaskPriority(p) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task is one assignable work item. Directors assign to anyone, producers
// only to their own operators.
type Task struct {
	ID              int          `json:"id" gorm:"primaryKey"`
	Title           string       `json:"title" gorm:"not null"`
	Description     string       `json:"description"`
	Status          TaskStatus   `json:"status" gorm:"default:pending"`
	Priority        TaskPriority `json:"priority" gorm:"default:medium"`
	AssignedToEmail string       `json:"assignedToEmail" gorm:"not null;index"`
	AssignedByEmail string       `json:"assignedByEmail" gorm:"not null;index"`
	DueDate         *time.Time   `json:"-" gorm:"type:date"`
	CreatedAt       time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
	// Joined display fields, not columns of the tasks table
	AssignedToName string `json:"assignedToName" gorm:"-"`
	AssignedByName string `json:"assignedByName" gorm:"-"`
	CommentCount   int    `json:"commentCount" gorm:"-"`
	DueDateString  string `json:"dueDate,omitempty" gorm:"-"`
}

// SetDueDate stores the due date in the wire date format alongside the raw
// value.
func (t *Task) SetDueDate(d *time.Time) {
	t.DueDate = d
	if d != nil {
		t.DueDateString = d.Format("2006-01-02")
	} else {
		t.DueDateString = ""
	}
}

// TaskComment is one discussion entry under a task.
type TaskComment struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	TaskID      int       `json:"taskId" gorm:"not null;index"`
	AuthorEmail string    `json:"authorEmail" gorm:"not null"`
	AuthorName  string    `json:"authorName" gorm:"-"`
	Text        string    `json:"text" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
