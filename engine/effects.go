package engine

// This file implements the special-card side effects (C4): the Dog's
// lead transfer and the Dragon's gift-to-opponent resolution. Both are
// generalized from the teacher's effects.go target-resolution pattern:
// a move triggers a pending obligation, and a second, narrower function
// resolves it before ordinary play can resume.

// handleDogLead discards the trick (no winner) and transfers lead to
// seat's partner, or the next active seat if the partner has already
// finished the round.
func handleDogLead(r *Round, seat Seat) []Event {
	r.CurrentTrick = nil
	r.Passed = [numSeats]bool{}

	to := seat.Partner()
	if r.isOut(to) || len(r.Hands[to]) == 0 {
		if next := r.activeSeatsAfter(seat); len(next) > 0 {
			to = next[0]
		}
	}
	r.LeadSeat = to
	r.CurrentSeat = to
	r.DogPriority = &to
	return []Event{DogLeadTransferred{To: to}}
}

// SelectDragonRecipient resolves a pending Dragon gift: giver names an
// opponent (never themselves or their partner) to receive the trick's
// cards and points. Play then resumes with the Dragon's winner leading.
func SelectDragonRecipient(r *Round, giver, recipient Seat) ([]Event, error) {
	if r.DragonPending == nil {
		return nil, ErrDragonMustChooseOpponent.Wrap("no Dragon gift is pending")
	}
	if r.DragonPending.Giver != giver {
		return nil, ErrNotYourTurn.Wrap("only the Dragon's winner may choose a recipient")
	}
	if recipient.Team() == giver.Team() {
		return nil, ErrDragonRecipientMustBeOpponent.Wrap("recipient must be on the opposing team")
	}

	gift := r.DragonPending
	r.Stacks[recipient].Cards = append(r.Stacks[recipient].Cards, gift.Cards...)
	r.Stacks[recipient].CardPoints += gift.Points
	r.DragonPending = nil

	r.LeadSeat = giver
	r.CurrentSeat = giver
	if r.isOut(giver) || len(r.Hands[giver]) == 0 {
		if next := r.activeSeatsAfter(giver); len(next) > 0 {
			r.LeadSeat = next[0]
			r.CurrentSeat = next[0]
		}
	}
	return nil, nil
}
