package models

// AvailabilitySlot is the raw per-time capacity reported by the catalog API.
type AvailabilitySlot struct {
	Time          string `json:"time"` // "HH:MM"
	TotalCapacity int    `json:"totalSlots"`
	BookedCount   int    `json:"bookedSlots"`
}

// AvailabilityDay is the raw availability snapshot for one activity+date.
type AvailabilityDay struct {
	Date      string             `json:"date"` // "YYYY-MM-DD"
	TimeSlots []AvailabilitySlot `json:"timeSlots"`
}

// SlotAvailability is the computed per-slot view served to the booking UI.
type SlotAvailability struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
	IsFull    bool   `json:"isFull"`
}

// Occupancy bands used by the UI to colour a day in the calendar.
const (
	BandFull     = "full"      // >= 100%
	BandNearFull = "near-full" // >= 80%
	BandModerate = "moderate"  // >= 50%
	BandOpen     = "open"      // < 50%
)

// DayAvailability is the computed day-level view: occupancy, per-slot
// remaining capacity and the closed flag.
type DayAvailability struct {
	Date             string             `json:"date"`
	OccupancyPercent int                `json:"occupancyPercent"`
	AvailableSlots   []SlotAvailability `json:"availableSlots"`
	IsClosed         bool               `json:"isClosed"`
	Band             string             `json:"band"`
}
