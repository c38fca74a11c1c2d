package tasks

import (
	"database/sql"
	"strings"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

func userContext(c *fiber.Ctx) (models.UserRole, string) {
	role, _ := c.Locals("user_role").(string)
	email, _ := c.Locals("user_email").(string)
	return models.UserRole(role), email
}

// ListTasksAPI returns the task list visible to the caller: directors see
// everything, producers their team plus their own, everyone else only what
// is assigned to them.
func ListTasksAPI(c *fiber.Ctx) error {
	role, email := userContext(c)
	db := config.GetDB()

	var (
		tasks []*models.Task
		err   error
	)
	switch role {
	case models.RoleDirector:
		tasks, err = database.ListAllTasks(db)
	case models.RoleProducer:
		var operators []string
		operators, err = database.ListProducerOperatorEmails(db, email)
		if err != nil {
			break
		}
		tasks, err = database.ListTasksForEmails(db, append(operators, email), email)
	default:
		tasks, err = database.ListTasksAssignedTo(db, email)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load tasks", "details": err.Error()})
	}

	return c.JSON(tasks)
}

// ListAssigneesAPI returns who the caller may assign tasks to.
func ListAssigneesAPI(c *fiber.Ctx) error {
	role, email := userContext(c)
	db := config.GetDB()

	switch role {
	case models.RoleDirector:
		users, err := database.ListUsersByRole(db, models.RoleProducer, models.RoleOperator)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load assignees", "details": err.Error()})
		}
		return c.JSON(assigneeList(users))
	case models.RoleProducer:
		operators, err := database.ListProducerOperatorEmails(db, email)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load assignees", "details": err.Error()})
		}
		users := make([]*models.User, 0, len(operators))
		for _, op := range operators {
			u, err := database.GetUserByEmail(db, op)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Database error"})
			}
			if u.IsActive {
				users = append(users, u)
			}
		}
		return c.JSON(assigneeList(users))
	default:
		return c.JSON([]fiber.Map{})
	}
}

func assigneeList(users []*models.User) []fiber.Map {
	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"email":    u.Email,
			"fullName": u.FullName,
			"role":     u.Role,
		})
	}
	return out
}

// CreateTaskAPI creates a task. Producers may only assign to their own
// operators.
func CreateTaskAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		Priority        string `json:"priority"`
		AssignedToEmail string `json:"assignedToEmail"`
		DueDate         string `json:"dueDate"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Title = strings.TrimSpace(req.Title)
	req.AssignedToEmail = strings.TrimSpace(req.AssignedToEmail)
	if req.Title == "" || req.AssignedToEmail == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and assignee required"})
	}

	if req.Priority == "" {
		req.Priority = string(models.TaskPriorityMedium)
	}
	if !models.ValidTaskPriority(req.Priority) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid priority"})
	}

	role, email := userContext(c)
	db := config.GetDB()

	if role == models.RoleProducer {
		operators, err := database.ListProducerOperatorEmails(db, email)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if !canAssignTo(role, req.AssignedToEmail, operators) {
			return c.Status(403).JSON(fiber.Map{"error": "Can only assign tasks to your operators"})
		}
	}

	task := &models.Task{
		Title:           req.Title,
		Description:     strings.TrimSpace(req.Description),
		Priority:        models.TaskPriority(req.Priority),
		AssignedToEmail: req.AssignedToEmail,
		AssignedByEmail: email,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid dueDate"})
		}
		task.SetDueDate(&due)
	}

	if err := database.CreateTask(db, task); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTaskAPI applies a partial update within the caller's edit scope.
func UpdateTaskAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task id"})
	}

	type UpdateRequest struct {
		Status      *string `json:"status"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
		DueDate     *string `json:"dueDate"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	task, err := database.GetTask(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	role, email := userContext(c)
	if !canUpdateTask(role, email, task) {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied"})
	}

	upd := database.TaskUpdate{}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
		}
		status := models.TaskStatus(*req.Status)
		upd.Status = &status
	}
	if req.Title != nil {
		upd.Title = req.Title
	}
	if req.Description != nil {
		upd.Description = req.Description
	}
	if req.Priority != nil {
		if !models.ValidTaskPriority(*req.Priority) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid priority"})
		}
		priority := models.TaskPriority(*req.Priority)
		upd.Priority = &priority
	}
	if req.DueDate != nil {
		upd.DueDateSet = true
		if *req.DueDate != "" {
			due, err := time.Parse("2006-01-02", *req.DueDate)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Invalid dueDate"})
			}
			upd.DueDate = &due
		}
	}

	if err := database.UpdateTask(db, id, upd); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update task", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Updated"})
}

// DeleteTaskAPI removes one completed task within the caller's delete scope.
func DeleteTaskAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task id"})
	}

	db := config.GetDB()
	task, err := database.GetTask(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	role, email := userContext(c)
	if msg := deleteTaskDenial(role, email, task); msg != "" {
		return c.Status(403).JSON(fiber.Map{"error": msg})
	}

	if err := database.DeleteTask(db, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}

// DeleteCompletedTasksAPI bulk-removes completed tasks. Director only.
func DeleteCompletedTasksAPI(c *fiber.Ctx) error {
	deleted, err := database.DeleteCompletedTasks(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete tasks", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}

// ListCommentsAPI returns one task's discussion.
func ListCommentsAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task id"})
	}

	comments, err := database.ListTaskComments(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load comments", "details": err.Error()})
	}

	return c.JSON(comments)
}

// AddCommentAPI appends one comment to a task.
func AddCommentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task id"})
	}

	type CommentRequest struct {
		Text string `json:"text"`
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.Status(400).JSON(fiber.Map{"error": "text required"})
	}

	db := config.GetDB()
	if _, err := database.GetTask(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	_, email := userContext(c)
	fullName, _ := c.Locals("user_full_name").(string)

	comment := &models.TaskComment{
		TaskID:      id,
		AuthorEmail: email,
		AuthorName:  fullName,
		Text:        req.Text,
	}
	if err := database.CreateTaskComment(db, comment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add comment", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
