package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fintrack-app/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMonthUnmarshalJSON(t *testing.T) {
	var target struct {
		Month types.Month
	}
	jsonString := []byte(`{ "month": "2024-05-12T17:59:23+02:00" }`)

	err := json.Unmarshal(jsonString, &target)

	assert.Nil(t, err)
	assert.Equal(t, types.NewMonth(2024, 5), target.Month)
}

func TestMonthUnmarshalJSONDate(t *testing.T) {
	var target struct {
		Month types.Month
	}
	jsonString := []byte(`{ "month": "2024-02-28" }`)

	err := json.Unmarshal(jsonString, &target)

	assert.Nil(t, err)
	assert.Equal(t, types.NewMonth(2024, 2), target.Month)
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2023-07", types.NewMonth(2023, 7).String())
	assert.Equal(t, "0800-12", types.NewMonth(800, 12).String())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", types.NewMonth(2024, 1).Label())
	assert.Equal(t, "Dec", types.NewMonth(2023, 12).Label())
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, types.NewMonth(2024, 2), types.MonthOf(time.Date(2024, 2, 28, 23, 59, 0, 0, time.UTC)))
}

func TestMonthAddDate(t *testing.T) {
	tests := []struct {
		name   string
		start  types.Month
		years  int
		months int
		want   types.Month
	}{
		{"next month", types.NewMonth(2024, 1), 0, 1, types.NewMonth(2024, 2)},
		{"previous month wraps year", types.NewMonth(2024, 1), 0, -1, types.NewMonth(2023, 12)},
		{"five months back", types.NewMonth(2024, 3), 0, -5, types.NewMonth(2023, 10)},
		{"a year ahead", types.NewMonth(2024, 6), 1, 0, types.NewMonth(2025, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddDate(tt.years, tt.months))
		})
	}
}

func TestQuarterStartOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want types.Month
	}{
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), types.NewMonth(2024, 1)},
		{time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), types.NewMonth(2024, 1)},
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), types.NewMonth(2024, 1)},
		{time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), types.NewMonth(2024, 4)},
		{time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), types.NewMonth(2024, 7)},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), types.NewMonth(2024, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, types.QuarterStartOf(tt.date))
		})
	}
}

func TestYearStartOf(t *testing.T) {
	assert.Equal(t, types.NewMonth(2024, 1), types.YearStartOf(time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC)))
}

func TestMonthContains(t *testing.T) {
	month := types.NewMonth(2024, 2)

	assert.True(t, month.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, month.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)))
}
