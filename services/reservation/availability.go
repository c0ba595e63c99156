package reservation

import (
	"math"

	"tourify/models"
)

// ComputeDay derives the bookable view of one day from the raw capacity
// snapshot: per-slot remaining capacity, day occupancy and the closed flag.
// A day with zero total capacity is closed, never a division by zero.
func ComputeDay(day models.AvailabilityDay) models.DayAvailability {
	slots := make([]models.SlotAvailability, 0, len(day.TimeSlots))
	totalCapacity := 0
	totalBooked := 0
	anyAvailable := false

	for _, slot := range day.TimeSlots {
		available := slot.TotalCapacity - slot.BookedCount
		if available < 0 {
			available = 0
		}
		if available > 0 {
			anyAvailable = true
		}
		totalCapacity += slot.TotalCapacity
		totalBooked += slot.BookedCount
		slots = append(slots, models.SlotAvailability{
			Time:      slot.Time,
			Available: available,
			IsFull:    available == 0,
		})
	}

	computed := models.DayAvailability{
		Date:           day.Date,
		AvailableSlots: slots,
	}

	if totalCapacity == 0 {
		computed.IsClosed = true
		computed.Band = models.BandFull
		return computed
	}

	computed.OccupancyPercent = int(math.Round(float64(totalBooked) / float64(totalCapacity) * 100))
	computed.IsClosed = !anyAvailable
	computed.Band = OccupancyBand(computed.OccupancyPercent, computed.IsClosed)
	return computed
}

// OccupancyBand classifies a day for UI severity colouring. Closed days are
// always "full" regardless of the raw percentage.
func OccupancyBand(occupancyPercent int, isClosed bool) string {
	switch {
	case isClosed, occupancyPercent >= 100:
		return models.BandFull
	case occupancyPercent >= 80:
		return models.BandNearFull
	case occupancyPercent >= 50:
		return models.BandModerate
	default:
		return models.BandOpen
	}
}

// ListAvailableTimes returns the bookable times for a day, in slot order.
// When the catalog has no day-specific snapshot every default time of the
// activity is offered, with capacity unknown.
func ListAvailableTimes(activity models.Activity, day *models.DayAvailability) []string {
	if day == nil {
		times := make([]string, len(activity.DefaultTimes))
		copy(times, activity.DefaultTimes)
		return times
	}

	times := make([]string, 0, len(day.AvailableSlots))
	for _, slot := range day.AvailableSlots {
		if slot.Available > 0 {
			times = append(times, slot.Time)
		}
	}
	return times
}
