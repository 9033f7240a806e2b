package create_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Ferry-ScheduleService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		OwnerID:   1,
		BoatID:    5,
		Name:      "Male - Dhidhdhoo morning",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Stops: []StopInput{
			{Name: "Male"},
			{Name: "HA.Dhidhdhoo"},
		},
		Segments: []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "11:30"},
		},
		PricingTier: "standard",
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest()))
	})

	t.Run("non-positive owner", func(t *testing.T) {
		req := validRequest()
		req.OwnerID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing start date", func(t *testing.T) {
		req := validRequest()
		req.StartDate = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive template id", func(t *testing.T) {
		req := validRequest()
		req.TemplateID = ptr.Ptr(int64(0))
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("unknown recurrence type", func(t *testing.T) {
		req := validRequest()
		req.Recurrence = &RecurrenceInput{Type: "yearly"}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("negative recurrence interval", func(t *testing.T) {
		req := validRequest()
		req.Recurrence = &RecurrenceInput{Type: "daily", Interval: -1}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		req := validRequest()
		req.Recurrence = &RecurrenceInput{Type: "weekly", Weekdays: []int{1, 7}}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("save as template requires template name", func(t *testing.T) {
		req := validRequest()
		req.SaveAsTemplate = true
		req.TemplateName = "  "
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestValidateSchedule(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		result := validateSchedule(validRequest())
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("all violations are collected in one pass", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		req.Stops = []StopInput{{Name: "Male"}}
		req.Segments = nil

		result := validateSchedule(req)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 3)
	})

	t.Run("departure must be before arrival", func(t *testing.T) {
		req := validRequest()
		req.Segments = []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "11:30", ArrivalTime: "10:00"},
		}

		result := validateSchedule(req)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "segment 1")
	})

	t.Run("equal departure and arrival is invalid", func(t *testing.T) {
		req := validRequest()
		req.Segments = []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "10:00"},
		}

		assert.False(t, validateSchedule(req).IsValid)
	})

	t.Run("segments must depart after previous arrival", func(t *testing.T) {
		req := validRequest()
		req.Stops = []StopInput{{Name: "Male"}, {Name: "HA.Dhidhdhoo"}, {Name: "HA.Hoarafushi"}}
		req.Segments = []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "11:30"},
			{OriginStop: "HA.Dhidhdhoo", DestStop: "HA.Hoarafushi", DepartureTime: "11:00", ArrivalTime: "12:00"},
		}

		result := validateSchedule(req)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "segments 1 and 2")
	})

	t.Run("back to back segments are invalid", func(t *testing.T) {
		// Следующий отрезок должен отправляться строго позже прибытия предыдущего
		req := validRequest()
		req.Stops = []StopInput{{Name: "Male"}, {Name: "HA.Dhidhdhoo"}, {Name: "HA.Hoarafushi"}}
		req.Segments = []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "11:30"},
			{OriginStop: "HA.Dhidhdhoo", DestStop: "HA.Hoarafushi", DepartureTime: "11:30", ArrivalTime: "12:30"},
		}

		assert.False(t, validateSchedule(req).IsValid)
	})

	t.Run("invalid time format reported once per segment", func(t *testing.T) {
		req := validRequest()
		req.Segments = []SegmentInput{
			{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10am", ArrivalTime: "11:30"},
		}

		result := validateSchedule(req)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "HH:MM")
	})
}
