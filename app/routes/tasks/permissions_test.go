package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

func task(assignedTo, assignedBy string, status models.TaskStatus) *models.Task {
	return &models.Task{
		AssignedToEmail: assignedTo,
		AssignedByEmail: assignedBy,
		Status:          status,
	}
}

func TestCanUpdateTask(t *testing.T) {
	pending := task("op@agency.test", "prod@agency.test", models.TaskStatusPending)

	assert.True(t, canUpdateTask(models.RoleDirector, "dir@agency.test", pending))

	assert.True(t, canUpdateTask(models.RoleProducer, "prod@agency.test", pending))
	assert.True(t, canUpdateTask(models.RoleProducer, "op@agency.test", task("op@agency.test", "other@agency.test", models.TaskStatusPending)))
	assert.False(t, canUpdateTask(models.RoleProducer, "stranger@agency.test", pending))

	assert.True(t, canUpdateTask(models.RoleOperator, "op@agency.test", pending))
	assert.False(t, canUpdateTask(models.RoleOperator, "other@agency.test", pending))
}

func TestDeleteTaskDenial(t *testing.T) {
	completed := task("op@agency.test", "prod@agency.test", models.TaskStatusCompleted)
	pending := task("op@agency.test", "prod@agency.test", models.TaskStatusPending)

	t.Run("operators never delete", func(t *testing.T) {
		assert.NotEmpty(t, deleteTaskDenial(models.RoleOperator, "op@agency.test", completed))
	})

	t.Run("director deletes completed only", func(t *testing.T) {
		assert.Empty(t, deleteTaskDenial(models.RoleDirector, "dir@agency.test", completed))
		assert.NotEmpty(t, deleteTaskDenial(models.RoleDirector, "dir@agency.test", pending))
	})

	t.Run("producer deletes own completed only", func(t *testing.T) {
		assert.Empty(t, deleteTaskDenial(models.RoleProducer, "prod@agency.test", completed))
		assert.NotEmpty(t, deleteTaskDenial(models.RoleProducer, "prod@agency.test", pending))
		assert.NotEmpty(t, deleteTaskDenial(models.RoleProducer, "other@agency.test", completed))
	})
}

func TestCanAssignTo(t *testing.T) {
	team := []string{"op1@agency.test", "op2@agency.test"}

	assert.True(t, canAssignTo(models.RoleDirector, "anyone@agency.test", nil))
	assert.True(t, canAssignTo(models.RoleProducer, "op1@agency.test", team))
	assert.False(t, canAssignTo(models.RoleProducer, "op3@agency.test", team))
	assert.False(t, canAssignTo(models.RoleProducer, "op1@agency.test", nil))
}
