package reservation

import "tourify/models"

// Step-entry guards. The UI is expected to prevent these transitions before
// they reach the service, so every violation here is reported as a validation
// error rather than a fatal condition.

func canEnterParticipants(draft models.ReservationDraft) error {
	if draft.Date == "" {
		return NewValidationError("a date must be selected before continuing")
	}
	if draft.Time == "" {
		return NewValidationError("a time must be selected before continuing")
	}
	if draft.ParticipantCount < 1 {
		return NewValidationError("at least one participant is required")
	}
	return nil
}

func canEnterContact(draft models.ReservationDraft) error {
	if err := canEnterParticipants(draft); err != nil {
		return err
	}
	for i, p := range draft.Participants {
		if !p.Complete() {
			return NewValidationError("participant %d is missing a first name, last name or birth date", i+1)
		}
	}
	return nil
}

func canSubmit(activity models.Activity, draft models.ReservationDraft) error {
	if err := canEnterContact(draft); err != nil {
		return err
	}
	if draft.CustomerName == "" {
		return NewValidationError("a contact name is required")
	}
	if draft.CustomerPhone == "" {
		return NewValidationError("a contact phone number is required")
	}
	if draft.HasTransfer {
		if draft.TransferZone == "" {
			return NewValidationError("a transfer zone is required for hotel pickup")
		}
		if draft.HotelName == "" {
			return NewValidationError("a hotel name is required for hotel pickup")
		}
		if !activity.HasZone(draft.TransferZone) {
			return NewValidationError("transfer zone %q is not served for this activity", draft.TransferZone)
		}
	}
	return nil
}
