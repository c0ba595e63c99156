package reservation

import (
	"time"

	"tourify/models"
)

const dateLayout = "2006-01-02"

// ResolvePrice returns the effective per-person price of an activity on a
// calendar date. Seasonal prices override the base price for their month;
// entries of zero (or missing months) fall back to the base price. The month
// is taken from the date exactly as written, with no timezone normalization.
func ResolvePrice(activity models.Activity, dateISO string) (float64, error) {
	if !activity.SeasonalPricingEnabled {
		return activity.BasePrice, nil
	}

	parsed, err := time.Parse(dateLayout, dateISO)
	if err != nil {
		return 0, NewValidationError("invalid date %q, expected YYYY-MM-DD", dateISO)
	}

	month := int(parsed.Month())
	if price, ok := activity.SeasonalPrices[month]; ok && price > 0 {
		return price, nil
	}
	return activity.BasePrice, nil
}
