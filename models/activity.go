package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Deposit types supported by an activity.
const (
	DepositTypePercentage = "percentage"
	DepositTypeFixed      = "fixed"
)

// Extra pricing modes.
const (
	ExtraPricingPerPerson = "perPerson"
	ExtraPricingFlat      = "flat"
)

// Activity is a bookable tour/experience product, supplied by the catalog API.
type Activity struct {
	ID                     string          `json:"id"`
	Title                  string          `json:"title,omitempty"`
	BasePrice              float64         `json:"basePrice"`
	SeasonalPricingEnabled bool            `json:"seasonalPricingEnabled"`
	SeasonalPrices         map[int]float64 `json:"seasonalPrices,omitempty"` // month (1..12) -> price; 0/absent falls back to BasePrice
	MaxParticipants        int             `json:"maxParticipants"`
	DefaultTimes           []string        `json:"defaultTimes"` // ordered "HH:MM" entries
	Extras                 []ActivityExtra `json:"extras,omitempty"`
	RequiresDeposit        bool            `json:"requiresDeposit"`
	DepositType            string          `json:"depositType,omitempty"` // "percentage" or "fixed"
	DepositAmount          float64         `json:"depositAmount,omitempty"`
	FullPaymentRequired    bool            `json:"fullPaymentRequired"`
	HasFreeHotelTransfer   bool            `json:"hasFreeHotelTransfer"`
	TransferZones          []TransferZone  `json:"transferZones,omitempty"`
}

// ActivityExtra is an optional priced add-on. Name is unique within the activity.
type ActivityExtra struct {
	Name        string  `json:"name"`
	PriceAmount float64 `json:"priceAmount"`
	Pricing     string  `json:"pricing,omitempty"` // "perPerson" or "flat"
}

// ExtraByName looks up an extra by its unique name.
func (a Activity) ExtraByName(name string) (ActivityExtra, bool) {
	for _, e := range a.Extras {
		if e.Name == name {
			return e, true
		}
	}
	return ActivityExtra{}, false
}

// TransferZone describes a hotel pickup zone for activities with free transfer.
type TransferZone struct {
	ZoneName      string `json:"zoneName"`
	MinutesBefore int    `json:"minutesBefore"`
}

// HasZone reports whether the activity offers pickup from the named zone.
func (a Activity) HasZone(zoneName string) bool {
	for _, z := range a.TransferZones {
		if z.ZoneName == zoneName {
			return true
		}
	}
	return false
}

// PickupTime derives the hotel pickup time for an activity starting at
// startTime ("HH:MM") by subtracting MinutesBefore. Slot times are whole
// minutes, so the subtraction is exact; any future sub-minute offsets
// truncate toward the earlier minute. Wraps past midnight.
func (z TransferZone) PickupTime(startTime string) (string, error) {
	parts := strings.Split(startTime, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", startTime)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return "", fmt.Errorf("invalid hour in %q", startTime)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return "", fmt.Errorf("invalid minute in %q", startTime)
	}

	total := hh*60 + mm - z.MinutesBefore
	for total < 0 {
		total += 24 * 60
	}
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}
