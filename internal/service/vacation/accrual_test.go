package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntitledDays(t *testing.T) {
	tests := []struct {
		months int
		want   int
	}{
		{0, 0},
		{-3, 0},
		{1, 2},
		{2, 5},
		{5, 12},
		{11, 27},
		{12, 30},
		{30, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EntitledDays(tt.months), "months=%d", tt.months)
	}
}

func TestAvailableDays(t *testing.T) {
	assert.Equal(t, 20, AvailableDays(30, 10))
	assert.Equal(t, 0, AvailableDays(10, 15))
	assert.Equal(t, 30, AvailableDays(30, 0))
}

func TestComputeAccrual(t *testing.T) {
	hire := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	got := ComputeAccrual(hire, today, 0)
	assert.Equal(t, 30, got.MonthsEmployed)
	assert.Equal(t, 30, got.EntitledDays)
	assert.Equal(t, 30, got.AvailableDays)

	got = ComputeAccrual(today, hire, 0)
	assert.Equal(t, 0, got.MonthsEmployed)
	assert.Equal(t, 0, got.AvailableDays)

	// Hired on the 31st, one day short of four full months.
	got = ComputeAccrual(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC), 4)
	assert.Equal(t, 3, got.MonthsEmployed)
	assert.Equal(t, 7, got.EntitledDays)
	assert.Equal(t, 3, got.AvailableDays)
}
