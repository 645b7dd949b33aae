package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

func isoPtr(s string) *string { return &s }

func TestClassifyDueAbsentForecast(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	due := ClassifyDue(nil, false, today)
	assert.False(t, due.Overdue)
	assert.Nil(t, due.DaysUntilDue)
	assert.Equal(t, domain.DueCategoryNone, due.Category)
}

func TestClassifyDueOverdueActiveTicket(t *testing.T) {
	today := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	due := ClassifyDue(isoPtr("2025-06-07"), false, today)
	assert.True(t, due.Overdue)
	require.NotNil(t, due.DaysUntilDue)
	assert.Equal(t, -3, *due.DaysUntilDue)
	assert.Equal(t, domain.DueCategoryOverdue, due.Category)
}

func TestClassifyDueInactiveNeverAlarms(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	due := ClassifyDue(isoPtr("2025-06-07"), true, today)
	assert.False(t, due.Overdue)
	require.NotNil(t, due.DaysUntilDue)
	assert.Equal(t, -3, *due.DaysUntilDue)
	assert.Equal(t, domain.DueCategoryOK, due.Category)
}

func TestClassifyDueWarningWindow(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		forecast string
		want     domain.DueCategory
		days     int
	}{
		{"2025-06-10", domain.DueCategoryWarning, 0},
		{"2025-06-12", domain.DueCategoryWarning, 2},
		{"2025-06-13", domain.DueCategoryOK, 3},
	}
	for _, tc := range cases {
		due := ClassifyDue(isoPtr(tc.forecast), false, today)
		assert.Equal(t, tc.want, due.Category, tc.forecast)
		require.NotNil(t, due.DaysUntilDue)
		assert.Equal(t, tc.days, *due.DaysUntilDue, tc.forecast)
	}
}

func TestClassifyDueMalformedForecast(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	due := ClassifyDue(isoPtr("soon"), false, today)
	assert.Equal(t, domain.DueCategoryNone, due.Category)
	assert.Nil(t, due.DaysUntilDue)
}
