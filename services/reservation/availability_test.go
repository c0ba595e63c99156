package reservation

import (
	"testing"

	"tourify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDay(t *testing.T) {
	t.Run("per-slot remaining capacity and occupancy", func(t *testing.T) {
		day := models.AvailabilityDay{
			Date: "2025-06-15",
			TimeSlots: []models.AvailabilitySlot{
				{Time: "09:00", TotalCapacity: 10, BookedCount: 10},
				{Time: "14:00", TotalCapacity: 10, BookedCount: 3},
			},
		}

		computed := ComputeDay(day)
		require.Len(t, computed.AvailableSlots, 2)

		assert.Equal(t, "09:00", computed.AvailableSlots[0].Time)
		assert.Equal(t, 0, computed.AvailableSlots[0].Available)
		assert.True(t, computed.AvailableSlots[0].IsFull)

		assert.Equal(t, "14:00", computed.AvailableSlots[1].Time)
		assert.Equal(t, 7, computed.AvailableSlots[1].Available)
		assert.False(t, computed.AvailableSlots[1].IsFull)

		// 13 of 20 booked rounds to 65%.
		assert.Equal(t, 65, computed.OccupancyPercent)
		assert.Equal(t, models.BandModerate, computed.Band)
		assert.False(t, computed.IsClosed)
	})

	t.Run("occupancy rounds to nearest percent", func(t *testing.T) {
		day := models.AvailabilityDay{
			Date: "2025-06-15",
			TimeSlots: []models.AvailabilitySlot{
				{Time: "09:00", TotalCapacity: 3, BookedCount: 1},
			},
		}
		// 1/3 rounds to 33.
		assert.Equal(t, 33, ComputeDay(day).OccupancyPercent)

		day.TimeSlots[0].BookedCount = 2
		// 2/3 rounds to 67.
		assert.Equal(t, 67, ComputeDay(day).OccupancyPercent)
	})

	t.Run("overbooked slot clamps to zero available", func(t *testing.T) {
		day := models.AvailabilityDay{
			Date: "2025-06-15",
			TimeSlots: []models.AvailabilitySlot{
				{Time: "09:00", TotalCapacity: 5, BookedCount: 8},
			},
		}

		computed := ComputeDay(day)
		assert.Equal(t, 0, computed.AvailableSlots[0].Available)
		assert.True(t, computed.AvailableSlots[0].IsFull)
		assert.True(t, computed.IsClosed)
	})

	t.Run("zero total capacity means closed day", func(t *testing.T) {
		day := models.AvailabilityDay{Date: "2025-06-15"}

		computed := ComputeDay(day)
		assert.True(t, computed.IsClosed)
		assert.Equal(t, models.BandFull, computed.Band)
		assert.Equal(t, 0, computed.OccupancyPercent)
	})

	t.Run("every slot full means closed day", func(t *testing.T) {
		day := models.AvailabilityDay{
			Date: "2025-06-15",
			TimeSlots: []models.AvailabilitySlot{
				{Time: "09:00", TotalCapacity: 4, BookedCount: 4},
				{Time: "14:00", TotalCapacity: 6, BookedCount: 6},
			},
		}

		computed := ComputeDay(day)
		assert.True(t, computed.IsClosed)
		assert.Equal(t, 100, computed.OccupancyPercent)
		assert.Equal(t, models.BandFull, computed.Band)
	})
}

func TestOccupancyBand(t *testing.T) {
	cases := []struct {
		percent  int
		isClosed bool
		want     string
	}{
		{0, false, models.BandOpen},
		{49, false, models.BandOpen},
		{50, false, models.BandModerate},
		{79, false, models.BandModerate},
		{80, false, models.BandNearFull},
		{99, false, models.BandNearFull},
		{100, false, models.BandFull},
		{120, false, models.BandFull},
		{10, true, models.BandFull},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OccupancyBand(tc.percent, tc.isClosed),
			"percent=%d closed=%v", tc.percent, tc.isClosed)
	}
}

func TestListAvailableTimes(t *testing.T) {
	activity := models.Activity{DefaultTimes: []string{"09:00", "14:00", "17:00"}}

	t.Run("only slots with capacity, in slot order", func(t *testing.T) {
		day := &models.DayAvailability{
			AvailableSlots: []models.SlotAvailability{
				{Time: "09:00", Available: 0, IsFull: true},
				{Time: "14:00", Available: 5},
				{Time: "17:00", Available: 1},
			},
		}
		assert.Equal(t, []string{"14:00", "17:00"}, ListAvailableTimes(activity, day))
	})

	t.Run("no snapshot offers the default times", func(t *testing.T) {
		times := ListAvailableTimes(activity, nil)
		assert.Equal(t, activity.DefaultTimes, times)

		// The returned slice is a copy.
		times[0] = "00:00"
		assert.Equal(t, "09:00", activity.DefaultTimes[0])
	})
}
