package database

import (
	"database/sql"
	"errors"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/lib/pq"
)

// ErrDuplicateAssignment is returned when an insert would violate the
// one-assignment-per-model invariant.
var ErrDuplicateAssignment = errors.New("assignment already exists")

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

// ListOperatorAssignments returns all operator-model assignments, or only
// those of one operator when operatorEmail is non-empty.
func ListOperatorAssignments(db *sql.DB, operatorEmail string) ([]*models.OperatorAssignment, error) {
	query := `SELECT id, operator_email, model_email, model_id, operator_percentage, assigned_by, assigned_at
			  FROM operator_model_assignments`
	args := []interface{}{}
	if operatorEmail != "" {
		query += ` WHERE operator_email = $1`
		args = append(args, operatorEmail)
	}
	query += ` ORDER BY id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.OperatorAssignment
	for rows.Next() {
		a := &models.OperatorAssignment{}
		if err := rows.Scan(
			&a.ID, &a.OperatorEmail, &a.ModelEmail, &a.ModelID,
			&a.OperatorPercentage, &a.AssignedBy, &a.AssignedAt,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CreateOperatorAssignment inserts a new assignment. The UNIQUE(model_id)
// constraint rejects a second assignment for the same model.
func CreateOperatorAssignment(db *sql.DB, a *models.OperatorAssignment) error {
	query := `INSERT INTO operator_model_assignments
			  (operator_email, model_email, model_id, operator_percentage, assigned_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, assigned_at`

	err := db.QueryRow(
		query, a.OperatorEmail, a.ModelEmail, a.ModelID, a.OperatorPercentage, a.AssignedBy,
	).Scan(&a.ID, &a.AssignedAt)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateAssignment
	}
	return err
}

// UpdateOperatorPercentage sets the operator's share for one assignment.
func UpdateOperatorPercentage(db *sql.DB, operatorEmail, modelEmail string, percentage float64) error {
	query := `UPDATE operator_model_assignments
			  SET operator_percentage = $1
			  WHERE operator_email = $2 AND model_email = $3`
	_, err := db.Exec(query, percentage, operatorEmail, modelEmail)
	return err
}

func DeleteOperatorAssignment(db *sql.DB, operatorEmail, modelEmail string) error {
	query := `DELETE FROM operator_model_assignments WHERE operator_email = $1 AND model_email = $2`
	_, err := db.Exec(query, operatorEmail, modelEmail)
	return err
}

// ListProducerAssignments returns producer assignments filtered by producer
// and/or type; empty arguments mean no filter.
func ListProducerAssignments(db *sql.DB, producerEmail string, assignmentType models.ProducerAssignmentType) ([]*models.ProducerAssignment, error) {
	query := `SELECT id, producer_email, model_email, operator_email, assignment_type, assigned_by, assigned_at
			  FROM producer_assignments WHERE 1=1`
	args := []interface{}{}
	if producerEmail != "" {
		args = append(args, producerEmail)
		query += ` AND producer_email = $1`
	}
	if assignmentType != "" {
		args = append(args, string(assignmentType))
		if len(args) == 1 {
			query += ` AND assignment_type = $1`
		} else {
			query += ` AND assignment_type = $2`
		}
	}
	query += ` ORDER BY id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.ProducerAssignment
	for rows.Next() {
		a := &models.ProducerAssignment{}
		if err := rows.Scan(
			&a.ID, &a.ProducerEmail, &a.ModelEmail, &a.OperatorEmail,
			&a.AssignmentType, &a.AssignedBy, &a.AssignedAt,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CreateProducerAssignment inserts a producer-model or producer-operator
// link. Model links are unique per model (partial index in the schema).
func CreateProducerAssignment(db *sql.DB, a *models.ProducerAssignment) error {
	query := `INSERT INTO producer_assignments
			  (producer_email, model_email, operator_email, assignment_type, assigned_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, assigned_at`

	err := db.QueryRow(
		query, a.ProducerEmail, a.ModelEmail, a.OperatorEmail, a.AssignmentType, a.AssignedBy,
	).Scan(&a.ID, &a.AssignedAt)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateAssignment
	}
	return err
}

func DeleteProducerAssignment(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM producer_assignments WHERE id = $1`, id)
	return err
}

// ListProducerOperatorEmails returns the operator emails linked to one
// producer. Used to scope task visibility and assignment rights.
func ListProducerOperatorEmails(db *sql.DB, producerEmail string) ([]string, error) {
	query := `SELECT operator_email FROM producer_assignments
			  WHERE producer_email = $1 AND assignment_type = 'operator' AND operator_email <> ''`

	rows, err := db.Query(query, producerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
