package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurrenceType_IsValid(t *testing.T) {
	assert.True(t, RecurrenceDaily.IsValid())
	assert.True(t, RecurrenceWeekly.IsValid())
	assert.True(t, RecurrenceMonthly.IsValid())
	assert.False(t, RecurrenceType("yearly").IsValid())
	assert.False(t, RecurrenceType("").IsValid())
}

func TestRecurrencePattern_NormalizedInterval(t *testing.T) {
	assert.Equal(t, DefaultRecurrenceInterval, (&RecurrencePattern{Interval: 0}).NormalizedInterval())
	assert.Equal(t, DefaultRecurrenceInterval, (&RecurrencePattern{Interval: -2}).NormalizedInterval())
	assert.Equal(t, 3, (&RecurrencePattern{Interval: 3}).NormalizedInterval())
}

func TestRecurrencePattern_WeekdayEligible(t *testing.T) {
	pattern := &RecurrencePattern{
		Type:     RecurrenceWeekly,
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
	}

	assert.True(t, pattern.WeekdayEligible(time.Monday))
	assert.True(t, pattern.WeekdayEligible(time.Wednesday))
	assert.False(t, pattern.WeekdayEligible(time.Sunday))

	// Пустой набор дней означает "все дни недели"
	allDays := &RecurrencePattern{Type: RecurrenceWeekly}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		assert.True(t, allDays.WeekdayEligible(wd))
	}
}
