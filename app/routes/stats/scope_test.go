package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

func TestStatsScope(t *testing.T) {
	t.Run("director defaults to whole production", func(t *testing.T) {
		whole, email := statsScope(models.RoleDirector, "dir@agency.test", "")
		assert.True(t, whole)
		assert.Empty(t, email)
	})

	t.Run("director can request one producer", func(t *testing.T) {
		whole, email := statsScope(models.RoleDirector, "dir@agency.test", "prod@agency.test")
		assert.False(t, whole)
		assert.Equal(t, "prod@agency.test", email)
	})

	t.Run("producer always sees own team", func(t *testing.T) {
		whole, email := statsScope(models.RoleProducer, "prod@agency.test", "")
		assert.False(t, whole)
		assert.Equal(t, "prod@agency.test", email)
	})

	t.Run("producer cannot request someone else", func(t *testing.T) {
		whole, email := statsScope(models.RoleProducer, "prod@agency.test", "other@agency.test")
		assert.False(t, whole)
		assert.Equal(t, "prod@agency.test", email)
	})
}
