package engine

// This file implements the per-intent contract for Play and Pass: the
// guard chain, the state updates on acceptance, and the advance-turn /
// trick-termination rules that drive them. It is the generalized
// replacement for the teacher's GenerateMoves/ApplyAction pair in
// betting.go: guards reject with a registered sentinel instead of being
// filtered out of a legal-move list, since this engine validates a single
// proposed intent rather than enumerating every legal one.

// ApplyPlay validates and applies a Play intent: seat plays cards as one
// combination. wishRank is only consulted when cards is a Mah Jong single;
// it is ignored otherwise. On success it returns the events the transition
// produced (possibly none) and mutates r in place.
func ApplyPlay(r *Round, seat Seat, cards []Card, wishRank *uint8) ([]Event, error) {
	if r.Phase != PhasePlay {
		return nil, ErrWrongPhase.Wrap("play is only valid in the play phase")
	}
	if r.DragonPending != nil {
		return nil, ErrDragonMustChooseOpponent.Wrap("resolve the pending Dragon gift first")
	}
	if !r.handHasMultiset(seat, cards) {
		return nil, ErrCardsNotInHand.Wrap("seat does not hold all of the played cards")
	}

	combo, err := Classify(cards)
	if err != nil {
		return nil, err
	}

	isDogLead := combo.Tag == TagSingle && cards[0].Kind == KindDog
	if isDogLead && len(r.CurrentTrick) != 0 {
		return nil, ErrInvalidCombination.Wrap("Dog must be the sole lead of a new trick")
	}

	if seat != r.CurrentSeat && !combo.IsBomb() {
		return nil, ErrNotYourTurn.Wrap("only a bomb may be played out of turn")
	}
	if combo.IsBomb() && dogInTrick(r) {
		return nil, ErrBombForbiddenDogInTrick.Wrap("Dog is present in the current trick")
	}

	if r.MahJongHolder == seat && !r.MahJongPlayed && !r.FirstCardPlayed[seat] {
		if !containsCard(cards, MahJong()) {
			return nil, ErrMahJongMustBePlayedFirst.Wrap("Mah Jong holder must include it in their first play")
		}
	}

	if combo.Tag == TagSingle && cards[0].Kind == KindPhoenix && len(r.CurrentTrick) > 0 {
		top := r.CurrentTrick[len(r.CurrentTrick)-1].Combo
		combo.Value = top.Value + 0.5
		if combo.Value >= float64(dragonValue) {
			combo.Value = float64(dragonValue) - 0.5
		}
	}

	if len(r.CurrentTrick) > 0 {
		top := r.CurrentTrick[len(r.CurrentTrick)-1].Combo
		if Compare(combo, top) != GreaterThan {
			return nil, ErrDoesNotBeatCurrent.Wrap("play does not beat the current trick top")
		}
	}

	if len(r.CurrentTrick) == 0 && r.Wish != nil && r.Wish.Active && r.hasWishedRank(seat) {
		leadsWished := combo.Tag == TagSingle && cards[0].Kind == KindStandard && cards[0].Rank == r.Wish.Rank
		if !leadsWished {
			return nil, ErrWishUnfulfilled.Wrap("must lead the wished rank as a single")
		}
	}

	isMahJongSingle := combo.Tag == TagSingle && cards[0].Kind == KindMahJong
	if isMahJongSingle && (wishRank == nil || *wishRank < RankTwo || *wishRank > RankAce) {
		return nil, ErrInvalidCombination.Wrap("Mah Jong as a single requires a wish rank in 2..14")
	}

	r.removeFromHand(seat, cards)
	r.FirstCardPlayed[seat] = true
	if containsCard(cards, MahJong()) {
		r.MahJongPlayed = true
	}

	var events []Event

	if isDogLead {
		r.History = append(r.History, HistoryEntry{Seat: seat, Description: "play"})
		if len(r.Hands[seat]) == 0 {
			r.Out = append(r.Out, seat)
			events = append(events, SeatFinished{Seat: seat})
		}
		return append(events, handleDogLead(r, seat)...), nil
	}

	if isMahJongSingle {
		r.Wish = &Wish{Rank: *wishRank, Active: true}
		events = append(events, WishSet{Rank: *wishRank})
	}

	r.CurrentTrick = append(r.CurrentTrick, Play{Seat: seat, Cards: cards, Combo: combo})
	r.History = append(r.History, HistoryEntry{Seat: seat, Description: "play"})

	if r.Wish != nil && r.Wish.Active && containsRank(cards, r.Wish.Rank) {
		r.Wish.Active = false
		events = append(events, WishCleared{})
	}
	if len(r.Hands[seat]) == 0 {
		r.Out = append(r.Out, seat)
		events = append(events, SeatFinished{Seat: seat})
	}
	if r.DogPriority != nil && *r.DogPriority == seat {
		r.DogPriority = nil
	}

	// Per §4.3: any accepted Play (bomb or not) clears passed entirely.
	r.Passed = [numSeats]bool{}

	if endEvents, ended := r.maybeEndTrick(); ended {
		events = append(events, endEvents...)
	} else {
		r.advanceAfterPlay(seat)
	}
	return events, nil
}

// ApplyPass validates and applies a Pass intent.
func ApplyPass(r *Round, seat Seat) ([]Event, error) {
	if r.Phase != PhasePlay {
		return nil, ErrWrongPhase.Wrap("pass is only valid in the play phase")
	}
	if r.DragonPending != nil {
		return nil, ErrDragonMustChooseOpponent.Wrap("resolve the pending Dragon gift first")
	}
	if seat != r.CurrentSeat {
		return nil, ErrNotYourTurn.Wrap("not seat's turn")
	}
	if len(r.CurrentTrick) == 0 {
		return nil, ErrMustLead.Wrap("no current play to pass on")
	}
	if r.Wish != nil && r.Wish.Active && r.hasWishedRank(seat) {
		return nil, ErrWishUnfulfilled.Wrap("seat holds the wished rank and may not pass")
	}

	r.Passed[seat] = true
	r.History = append(r.History, HistoryEntry{Seat: seat, Description: "pass"})

	var events []Event
	if endEvents, ended := r.maybeEndTrick(); ended {
		events = append(events, endEvents...)
	} else {
		r.advanceAfterPass(seat)
	}
	return events, nil
}

// maybeEndTrick reports whether every active seat besides the current top
// play's owner has passed, and if so concludes the trick.
func (r *Round) maybeEndTrick() ([]Event, bool) {
	if len(r.CurrentTrick) == 0 {
		return nil, false
	}
	winner := r.CurrentTrick[len(r.CurrentTrick)-1].Seat
	for seat := Seat(0); seat < numSeats; seat++ {
		if seat == winner || r.isOut(seat) || len(r.Hands[seat]) == 0 {
			continue
		}
		if !r.Passed[seat] {
			return nil, false
		}
	}
	return r.concludeTrick(winner), true
}

// concludeTrick awards the trick to winner (or parks it for the Dragon
// gift) and resets trick-scoped state.
func (r *Round) concludeTrick(winner Seat) []Event {
	var events []Event
	winningPlay := r.CurrentTrick[len(r.CurrentTrick)-1]
	isDragonWin := winningPlay.Combo.Tag == TagSingle && winningPlay.Cards[0].Kind == KindDragon

	var cards []Card
	points := 0
	for _, p := range r.CurrentTrick {
		cards = append(cards, p.Cards...)
		for _, c := range p.Cards {
			points += c.CardPoints()
		}
	}

	if isDragonWin {
		r.DragonPending = &DragonGift{Giver: winner, Cards: cards, Points: points}
		events = append(events, DragonGiftPending{Giver: winner})
	} else {
		r.Stacks[winner].Cards = append(r.Stacks[winner].Cards, cards...)
		r.Stacks[winner].CardPoints += points
	}
	events = append(events, TrickWon{Winner: winner})

	r.CurrentTrick = nil
	r.Passed = [numSeats]bool{}
	r.LeadSeat = winner
	r.CurrentSeat = winner
	if r.isOut(winner) || len(r.Hands[winner]) == 0 {
		if next := r.activeSeatsAfter(winner); len(next) > 0 {
			r.LeadSeat = next[0]
			r.CurrentSeat = next[0]
		}
	}
	return events
}

func (r *Round) advanceAfterPlay(actor Seat) {
	if next := r.activeSeatsAfter(actor); len(next) > 0 {
		r.CurrentSeat = next[0]
	}
}

func (r *Round) advanceAfterPass(actor Seat) {
	for _, s := range r.activeSeatsAfter(actor) {
		if !r.Passed[s] {
			r.CurrentSeat = s
			return
		}
	}
}

func (r *Round) hasWishedRank(seat Seat) bool {
	if r.Wish == nil {
		return false
	}
	for _, c := range r.Hands[seat] {
		if c.Kind == KindStandard && c.Rank == r.Wish.Rank {
			return true
		}
	}
	return false
}

func dogInTrick(r *Round) bool {
	for _, p := range r.CurrentTrick {
		for _, c := range p.Cards {
			if c.Kind == KindDog {
				return true
			}
		}
	}
	return false
}

func containsCard(cards []Card, want Card) bool {
	for _, c := range cards {
		if c == want {
			return true
		}
	}
	return false
}

func containsRank(cards []Card, rank uint8) bool {
	for _, c := range cards {
		if c.Kind == KindStandard && c.Rank == rank {
			return true
		}
	}
	return false
}
