package engine

// This file implements C5: the simultaneous three-card exchange between
// all four seats. Each seat submits once; the swap only takes effect once
// all four have submitted, so no seat's choice is influenced by another's.

// SubmitExchange records seat's three outgoing cards. cards must be three
// distinct cards currently in seat's hand; the slot is write-once. Once
// all four seats have submitted, the swap resolves immediately and the
// round moves into the play phase with Mah Jong's holder on lead.
func SubmitExchange(r *Round, seat Seat, cards [3]Card) error {
	if r.Phase != PhaseExchange {
		return ErrWrongPhase.Wrap("exchange is only valid in the exchange phase")
	}
	if r.Exchange[seat].Submitted {
		return ErrExchangeBad.Wrap("seat already submitted its exchange")
	}
	if cards[0] == cards[1] || cards[0] == cards[2] || cards[1] == cards[2] {
		return ErrExchangeBad.Wrap("exchange cards must be distinct")
	}
	if !r.handHasMultiset(seat, cards[:]) {
		return ErrExchangeBad.Wrap("seat does not hold all three exchange cards")
	}

	r.Exchange[seat] = ExchangeSlot{Cards: cards, Submitted: true}

	allSubmitted := true
	for s := Seat(0); s < numSeats; s++ {
		if !r.Exchange[s].Submitted {
			allSubmitted = false
			break
		}
	}
	if allSubmitted {
		r.resolveExchange()
	}
	return nil
}

// resolveExchange performs the atomic four-way swap once every seat has
// submitted. Recipient mapping per ExchangeSlot: [0] to the next seat
// clockwise, [1] to the partner, [2] to the previous seat.
func (r *Round) resolveExchange() {
	for g := Seat(0); g < numSeats; g++ {
		r.removeFromHand(g, r.Exchange[g].Cards[:])
	}
	for g := Seat(0); g < numSeats; g++ {
		slot := r.Exchange[g]
		r.Hands[g.Next()] = append(r.Hands[g.Next()], slot.Cards[0])
		r.Hands[g.Partner()] = append(r.Hands[g.Partner()], slot.Cards[1])
		r.Hands[g.Prev()] = append(r.Hands[g.Prev()], slot.Cards[2])
	}

	holder, ok := r.mahJongHolder()
	if !ok {
		panic(ErrEngineInvariant.Wrap("no seat holds Mah Jong after exchange").Error())
	}
	r.MahJongHolder = holder
	r.LeadSeat = holder
	r.CurrentSeat = holder
	r.Phase = PhasePlay
}
