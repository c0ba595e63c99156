package reservation

import (
	"math"

	"tourify/models"
)

// ComputeTotal derives the full price breakdown for a draft: per-person base
// total, extras, grand total and the upfront-payment decision. The decision
// order is fixed: full payment required wins over a deposit, a deposit wins
// over collect-later.
func ComputeTotal(activity models.Activity, draft models.ReservationDraft) (models.PriceBreakdown, error) {
	unitPrice, err := ResolvePrice(activity, draft.Date)
	if err != nil {
		return models.PriceBreakdown{}, err
	}

	basePriceTotal := unitPrice * float64(draft.ParticipantCount)

	extrasTotal := 0.0
	for _, extra := range draft.SelectedExtras {
		extrasTotal += extra.UnitPrice * float64(extra.Quantity)
	}

	breakdown := models.PriceBreakdown{
		BasePriceTotal: basePriceTotal,
		ExtrasTotal:    extrasTotal,
		GrandTotal:     basePriceTotal + extrasTotal,
	}

	switch {
	case activity.FullPaymentRequired:
		breakdown.PaymentType = models.PaymentTypeFull
		breakdown.DepositRequired = breakdown.GrandTotal
		breakdown.RemainingPayment = 0
	case activity.RequiresDeposit:
		breakdown.PaymentType = models.PaymentTypePartial
		if activity.DepositType == models.DepositTypePercentage {
			breakdown.DepositRequired = math.Round(breakdown.GrandTotal * activity.DepositAmount / 100)
		} else {
			breakdown.DepositRequired = activity.DepositAmount
		}
		breakdown.RemainingPayment = breakdown.GrandTotal - breakdown.DepositRequired
		if breakdown.RemainingPayment < 0 {
			breakdown.RemainingPayment = 0
		}
	default:
		breakdown.PaymentType = models.PaymentTypeNone
		breakdown.DepositRequired = 0
		breakdown.RemainingPayment = breakdown.GrandTotal
	}

	return breakdown, nil
}
