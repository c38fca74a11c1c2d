package finances

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

func TestBlockedEntryDenial(t *testing.T) {
	day := DayFinanceRequest{
		Date:     "2024-03-05",
		CbTokens: 400,
		SpIncome: 200,
	}

	t.Run("open date passes", func(t *testing.T) {
		assert.Empty(t, blockedEntryDenial(day, nil))
	})

	t.Run("all-platform block closes the day", func(t *testing.T) {
		msg := blockedEntryDenial(day, []models.BlockedPlatform{models.BlockAllPlatforms})
		assert.NotEmpty(t, msg)
	})

	t.Run("platform block rejects only its own fields", func(t *testing.T) {
		assert.NotEmpty(t, blockedEntryDenial(day, []models.BlockedPlatform{models.BlockChaturbate}))
		assert.NotEmpty(t, blockedEntryDenial(day, []models.BlockedPlatform{models.BlockStripchat}))

		spOnly := DayFinanceRequest{Date: "2024-03-05", SpIncome: 200}
		assert.Empty(t, blockedEntryDenial(spOnly, []models.BlockedPlatform{models.BlockChaturbate}))

		cbOnly := DayFinanceRequest{Date: "2024-03-05", CbTokens: 400}
		assert.Empty(t, blockedEntryDenial(cbOnly, []models.BlockedPlatform{models.BlockStripchat}))
	})

	t.Run("zero-value save passes a platform block", func(t *testing.T) {
		empty := DayFinanceRequest{Date: "2024-03-05", Transfers: 50}
		assert.Empty(t, blockedEntryDenial(empty, []models.BlockedPlatform{
			models.BlockChaturbate, models.BlockStripchat,
		}))
	})
}
