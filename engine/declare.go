package engine

// This file implements C6: the two declaration windows. Grand Tichu must
// be answered before a seat's hidden six are revealed to them; Tichu may
// be declared any time during the play phase (after the exchange) until
// the seat plays its first card.
// Both are terminal: once answered, a seat cannot retract or re-declare.

// DeclareGrandTichu commits seat to a Grand Tichu and reveals its hidden
// six in the same step (the declaration happens before the seat has seen
// those cards). Valid only before seat has revealed.
func DeclareGrandTichu(r *Round, seat Seat) error {
	if err := checkGrandTichuWindow(r, seat); err != nil {
		return err
	}
	r.GrandTichu[seat] = true
	reveal(r, seat)
	return nil
}

// RevealHidden6 declines a Grand Tichu and reveals seat's hidden six.
// Valid only before seat has revealed.
func RevealHidden6(r *Round, seat Seat) error {
	if err := checkGrandTichuWindow(r, seat); err != nil {
		return err
	}
	reveal(r, seat)
	return nil
}

func checkGrandTichuWindow(r *Round, seat Seat) error {
	if r.Phase != PhaseGrandTichuWindow {
		return ErrDeclarationOutOfWindow.Wrap("Grand Tichu window is closed")
	}
	if r.Revealed[seat] {
		return ErrDeclarationOutOfWindow.Wrap("seat already revealed its hidden six")
	}
	return nil
}

// reveal merges seat's hidden six into its hand and, once every seat has
// revealed, advances the round into the exchange phase.
func reveal(r *Round, seat Seat) {
	r.Revealed[seat] = true
	r.Hands[seat] = append(r.Hands[seat], r.Hidden6[seat]...)
	r.Hidden6[seat] = nil

	for s := Seat(0); s < numSeats; s++ {
		if !r.Revealed[s] {
			return
		}
	}
	r.Phase = PhaseExchange
}

// DeclareTichu answers seat's (normal) Tichu window: a one-way commitment
// to go out with no more than the hand seat held at declaration time.
// Valid only in the play phase, before seat plays their first card of the
// round, and only if seat holds no Grand Tichu.
func DeclareTichu(r *Round, seat Seat) error {
	if r.Phase != PhasePlay {
		return ErrDeclarationOutOfWindow.Wrap("Tichu window has not opened")
	}
	if r.Tichu[seat] || r.GrandTichu[seat] {
		return ErrDeclarationOutOfWindow.Wrap("seat already holds a declaration")
	}
	if r.FirstCardPlayed[seat] {
		return ErrDeclarationOutOfWindow.Wrap("seat has already played its first card")
	}
	r.Tichu[seat] = true
	return nil
}
