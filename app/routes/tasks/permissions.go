package tasks

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

// canUpdateTask implements the edit scope: directors edit anything,
// producers edit tasks they created or carry, operators only their own.
func canUpdateTask(role models.UserRole, email string, t *models.Task) bool {
	switch role {
	case models.RoleDirector:
		return true
	case models.RoleProducer:
		return email == t.AssignedByEmail || email == t.AssignedToEmail
	default:
		return email == t.AssignedToEmail
	}
}

// deleteTaskDenial returns the refusal message for a single-task delete, or
// empty when the delete is allowed. Only completed tasks are deletable, and
// producers may only delete tasks they created.
func deleteTaskDenial(role models.UserRole, email string, t *models.Task) string {
	switch role {
	case models.RoleDirector:
		if t.Status != models.TaskStatusCompleted {
			return "Only completed tasks can be deleted"
		}
		return ""
	case models.RoleProducer:
		if t.AssignedByEmail != email {
			return "Can only delete your own tasks"
		}
		if t.Status != models.TaskStatusCompleted {
			return "Only completed tasks can be deleted"
		}
		return ""
	default:
		return "Operators cannot delete tasks"
	}
}

// canAssignTo checks the assignment scope of a task creator. Directors
// assign to anyone; producers only to operators on their team.
func canAssignTo(role models.UserRole, assignee string, teamOperators []string) bool {
	if role == models.RoleDirector {
		return true
	}
	for _, op := range teamOperators {
		if op == assignee {
			return true
		}
	}
	return false
}
