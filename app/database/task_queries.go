package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/lib/pq"
)

const taskColumns = `t.id, t.title, t.description, t.status, t.priority,
	t.assigned_to_email, t.assigned_by_email, t.due_date,
	t.created_at, t.updated_at, t.completed_at,
	COALESCE(u1.full_name, ''), COALESCE(u2.full_name, ''),
	(SELECT COUNT(*) FROM task_comments c WHERE c.task_id = t.id)`

const taskJoins = `FROM tasks t
	LEFT JOIN users u1 ON u1.email = t.assigned_to_email
	LEFT JOIN users u2 ON u2.email = t.assigned_by_email`

func scanTask(rows *sql.Rows) (*models.Task, error) {
	t := &models.Task{}
	var dueDate, completedAt sql.NullTime
	if err := rows.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.AssignedToEmail, &t.AssignedByEmail, &dueDate,
		&t.CreatedAt, &t.UpdatedAt, &completedAt,
		&t.AssignedToName, &t.AssignedByName, &t.CommentCount,
	); err != nil {
		return nil, err
	}
	if dueDate.Valid {
		d := dueDate.Time
		t.SetDueDate(&d)
	}
	if completedAt.Valid {
		c := completedAt.Time
		t.CompletedAt = &c
	}
	return t, nil
}

func queryTasks(db *sql.DB, where string, args ...interface{}) ([]*models.Task, error) {
	query := fmt.Sprintf("SELECT %s %s %s ORDER BY t.created_at DESC", taskColumns, taskJoins, where)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListAllTasks returns every task, newest first. Director view.
func ListAllTasks(db *sql.DB) ([]*models.Task, error) {
	return queryTasks(db, "")
}

// ListTasksForEmails returns tasks assigned to any of the given emails or
// created by the given author. Producer view: their operators plus their own.
func ListTasksForEmails(db *sql.DB, emails []string, authorEmail string) ([]*models.Task, error) {
	return queryTasks(db,
		"WHERE t.assigned_to_email = ANY($1) OR t.assigned_by_email = $2",
		pq.Array(emails), authorEmail)
}

// ListTasksAssignedTo returns tasks assigned to one user. Operator view.
func ListTasksAssignedTo(db *sql.DB, email string) ([]*models.Task, error) {
	return queryTasks(db, "WHERE t.assigned_to_email = $1", email)
}

// GetTask loads one task without the joined display fields.
func GetTask(db *sql.DB, id int) (*models.Task, error) {
	t := &models.Task{ID: id}
	query := `SELECT title, status, assigned_to_email, assigned_by_email FROM tasks WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&t.Title, &t.Status, &t.AssignedToEmail, &t.AssignedByEmail)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTask(db *sql.DB, t *models.Task) error {
	query := `INSERT INTO tasks (title, description, priority, assigned_to_email, assigned_by_email, due_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, status, created_at, updated_at`

	return db.QueryRow(
		query, t.Title, t.Description, t.Priority, t.AssignedToEmail, t.AssignedByEmail, t.DueDate,
	).Scan(&t.ID, &t.Status, &t.CreatedAt, &t.UpdatedAt)
}

// TaskUpdate carries a partial task update; nil fields are left unchanged.
// DueDateSet distinguishes "clear the due date" from "leave it alone".
type TaskUpdate struct {
	Status      *models.TaskStatus
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	DueDate     *time.Time
	DueDateSet  bool
}

// UpdateTask applies the non-nil fields. Completing a task stamps
// completed_at; moving it to any other status clears the stamp.
func UpdateTask(db *sql.DB, id int, upd TaskUpdate) error {
	sets := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if upd.Status != nil {
		sets = append(sets, "status = "+arg(*upd.Status))
		if *upd.Status == models.TaskStatusCompleted {
			sets = append(sets, "completed_at = NOW()")
		} else {
			sets = append(sets, "completed_at = NULL")
		}
	}
	if upd.Title != nil {
		sets = append(sets, "title = "+arg(*upd.Title))
	}
	if upd.Description != nil {
		sets = append(sets, "description = "+arg(*upd.Description))
	}
	if upd.Priority != nil {
		sets = append(sets, "priority = "+arg(*upd.Priority))
	}
	if upd.DueDateSet {
		sets = append(sets, "due_date = "+arg(upd.DueDate))
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = %s", strings.Join(sets, ", "), arg(id))
	_, err := db.Exec(query, args...)
	return err
}

// DeleteTask removes one task and its comments.
func DeleteTask(db *sql.DB, id int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM task_comments WHERE task_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteCompletedTasks removes every completed task and their comments,
// returning how many tasks were deleted.
func DeleteCompletedTasks(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM task_comments WHERE task_id IN (SELECT id FROM tasks WHERE status = 'completed')`,
	); err != nil {
		return 0, err
	}

	result, err := tx.Exec(`DELETE FROM tasks WHERE status = 'completed'`)
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(deleted), tx.Commit()
}

// ListTaskComments returns a task's comments oldest first.
func ListTaskComments(db *sql.DB, taskID int) ([]*models.TaskComment, error) {
	query := `SELECT c.id, c.task_id, c.author_email, COALESCE(u.full_name, ''), c.text, c.created_at
			  FROM task_comments c
			  LEFT JOIN users u ON u.email = c.author_email
			  WHERE c.task_id = $1
			  ORDER BY c.created_at ASC`

	rows, err := db.Query(query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.TaskComment{}
	for rows.Next() {
		c := &models.TaskComment{}
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorEmail, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func CreateTaskComment(db *sql.DB, c *models.TaskComment) error {
	query := `INSERT INTO task_comments (task_id, author_email, text)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`

	return db.QueryRow(query, c.TaskID, c.AuthorEmail, c.Text).Scan(&c.ID, &c.CreatedAt)
}
