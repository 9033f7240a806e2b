package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Ferry-ScheduleService/pkg/types"
)

func TestOverlapMinutes(t *testing.T) {
	tests := []struct {
		name                   string
		dep1, arr1, dep2, arr2 types.TimeString
		want                   int
	}{
		{
			name: "contained interval",
			dep1: "10:00", arr1: "11:00",
			dep2: "10:30", arr2: "10:45",
			want: 15,
		},
		{
			name: "partial overlap",
			dep1: "10:00", arr1: "11:00",
			dep2: "10:30", arr2: "12:00",
			want: 30,
		},
		{
			name: "identical intervals",
			dep1: "10:00", arr1: "11:00",
			dep2: "10:00", arr2: "11:00",
			want: 60,
		},
		{
			name: "touching boundaries are not a conflict",
			dep1: "10:00", arr1: "11:00",
			dep2: "11:00", arr2: "12:00",
			want: 0,
		},
		{
			name: "disjoint intervals",
			dep1: "10:00", arr1: "11:00",
			dep2: "12:00", arr2: "13:00",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapMinutes(tt.dep1, tt.arr1, tt.dep2, tt.arr2)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично относительно порядка аргументов
			swapped := OverlapMinutes(tt.dep2, tt.arr2, tt.dep1, tt.arr1)
			assert.Equal(t, got, swapped)
		})
	}
}

func TestFindConflicts(t *testing.T) {
	existing := []*Schedule{
		{
			ID:       10,
			BoatName: "Dhoni Express",
			Segments: []ScheduleSegment{
				{OriginStop: "Male", DestStop: "HA.Dhidhdhoo", DepartureTime: "10:00", ArrivalTime: "11:00"},
				{OriginStop: "HA.Dhidhdhoo", DestStop: "HA.Hoarafushi", DepartureTime: "11:30", ArrivalTime: "12:30"},
			},
		},
		{
			ID:       11,
			BoatName: "Dhoni Express",
			Segments: []ScheduleSegment{
				{OriginStop: "Male", DestStop: "K.Maafushi", DepartureTime: "15:00", ArrivalTime: "16:00"},
			},
		},
	}

	t.Run("no overlap", func(t *testing.T) {
		candidate := []ScheduleSegment{
			{DepartureTime: "13:00", ArrivalTime: "14:00"},
		}
		assert.Empty(t, FindConflicts(candidate, existing))
	})

	t.Run("single conflict reports existing segment departure", func(t *testing.T) {
		candidate := []ScheduleSegment{
			{DepartureTime: "10:30", ArrivalTime: "10:45"},
		}

		conflicts := FindConflicts(candidate, existing)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, int64(10), conflicts[0].ScheduleID)
		assert.Equal(t, "Dhoni Express", conflicts[0].BoatName)
		assert.Equal(t, types.TimeString("10:00"), conflicts[0].ConflictTime)
		assert.Equal(t, 15, conflicts[0].OverlapMinutes)
	})

	t.Run("candidate spanning multiple existing segments", func(t *testing.T) {
		candidate := []ScheduleSegment{
			{DepartureTime: "10:30", ArrivalTime: "15:30"},
		}

		conflicts := FindConflicts(candidate, existing)
		assert.Len(t, conflicts, 3)
	})

	t.Run("touching boundary is not a conflict", func(t *testing.T) {
		candidate := []ScheduleSegment{
			{DepartureTime: "11:00", ArrivalTime: "11:30"},
		}
		assert.Empty(t, FindConflicts(candidate, existing))
	})

	t.Run("no existing schedules", func(t *testing.T) {
		candidate := []ScheduleSegment{
			{DepartureTime: "10:00", ArrivalTime: "11:00"},
		}
		assert.Empty(t, FindConflicts(candidate, nil))
	})
}
