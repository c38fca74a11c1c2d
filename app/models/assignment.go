package models

import "time"

// OperatorAssignment maps a model to their operator of record.
// One row per model: the schema enforces uniqueness on model_id, so the
// payroll run can key assignments by model without scan ambiguity.
type OperatorAssignment struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	OperatorEmail string    `json:"operatorEmail" gorm:"not null;index" validate:"required,email"`
	ModelEmail    string    `json:"modelEmail" gorm:"not null" validate:"required,email"`
	ModelID       int       `json:"modelId" gorm:"not null;uniqueIndex"`
	// Operator's cut of the gross check, 0-30. The producer receives the
	// remainder of the shared 30% pool.
	OperatorPercentage float64   `json:"operatorPercentage" gorm:"default:20"`
	AssignedBy         string    `json:"assignedBy"`
	AssignedAt         time.Time `json:"assignedAt" gorm:"autoCreateTime"`
}

// ProducerAssignment links a producer to a model or to an operator,
// discriminated by AssignmentType.
type ProducerAssignment struct {
	ID             int                    `json:"id" gorm:"primaryKey"`
	ProducerEmail  string                 `json:"producerEmail" gorm:"not null;index" validate:"required,email"`
	ModelEmail     string                 `json:"modelEmail,omitempty"`
	OperatorEmail  string                 `json:"operatorEmail,omitempty"`
	AssignmentType ProducerAssignmentType `json:"assignmentType" gorm:"not null;type:varchar(10)"`
	AssignedBy     string                 `json:"assignedBy"`
	AssignedAt     time.Time              `json:"assignedAt" gorm:"autoCreateTime"`
}
