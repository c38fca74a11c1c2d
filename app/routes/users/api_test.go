package users

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestApplyUserUpdates(t *testing.T) {
	base := func() *models.User {
		return &models.User{
			FullName:       "Sana Solo",
			Role:           models.RoleSoloMaker,
			SoloPercentage: 60,
			IsActive:       true,
		}
	}

	t.Run("zero percentage is a real update", func(t *testing.T) {
		u := base()
		msg := applyUserUpdates(u, UpdateUserRequest{SoloPercentage: intPtr(0)})
		assert.Empty(t, msg)
		assert.Equal(t, 0, u.SoloPercentage)
	})

	t.Run("absent fields stay untouched", func(t *testing.T) {
		u := base()
		msg := applyUserUpdates(u, UpdateUserRequest{IsActive: boolPtr(false)})
		assert.Empty(t, msg)
		assert.Equal(t, "Sana Solo", u.FullName)
		assert.Equal(t, models.RoleSoloMaker, u.Role)
		assert.Equal(t, 60, u.SoloPercentage)
		assert.False(t, u.IsActive)
	})

	t.Run("name and role update together", func(t *testing.T) {
		u := base()
		msg := applyUserUpdates(u, UpdateUserRequest{
			FullName: strPtr("Sana Senior"),
			Role:     strPtr("producer"),
		})
		assert.Empty(t, msg)
		assert.Equal(t, "Sana Senior", u.FullName)
		assert.Equal(t, models.RoleProducer, u.Role)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		u := base()
		msg := applyUserUpdates(u, UpdateUserRequest{FullName: strPtr("")})
		assert.NotEmpty(t, msg)
		assert.Equal(t, "Sana Solo", u.FullName)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		u := base()
		msg := applyUserUpdates(u, UpdateUserRequest{Role: strPtr("intern")})
		assert.NotEmpty(t, msg)
		assert.Equal(t, models.RoleSoloMaker, u.Role)
	})

	t.Run("percentage out of range rejected", func(t *testing.T) {
		u := base()
		assert.NotEmpty(t, applyUserUpdates(u, UpdateUserRequest{SoloPercentage: intPtr(101)}))
		assert.NotEmpty(t, applyUserUpdates(u, UpdateUserRequest{SoloPercentage: intPtr(-1)}))
		assert.Equal(t, 60, u.SoloPercentage)
	})
}
