package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryAdjustmentWireShape(t *testing.T) {
	a := &SalaryAdjustment{
		Email:   "op@agency.test",
		Role:    "operator",
		Advance: 100,
	}
	a.SetPeriod(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, "2024-03-01", a.PeriodStart)
	assert.Equal(t, "2024-03-15", a.PeriodEnd)

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &wire))

	// Period bounds stay plain dates, never RFC3339 timestamps
	assert.Equal(t, "2024-03-01", wire["period_start"])
	assert.Equal(t, "2024-03-15", wire["period_end"])
}
