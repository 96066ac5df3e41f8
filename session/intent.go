// Package session composes the engine package's per-round and per-match
// primitives into the single dispatch surface described in SPEC_FULL.md
// C8: one Apply(intent) call per client action, returning the events that
// action produced or the rejection that blocked it.
package session

import "github.com/signalnine/tichu-engine/engine"

// Intent is the closed set of client-submitted actions. Each corresponds
// to exactly one engine entry point; Apply is a thin dispatch table over
// this set plus the round/match-end bookkeeping engine leaves to its
// caller.
type Intent interface{ isIntent() }

// DeclareGrandTichuIntent commits a seat to a Grand Tichu and reveals its
// hidden six in the same step.
type DeclareGrandTichuIntent struct {
	Seat engine.Seat
}

// RevealHidden6Intent declines a Grand Tichu and reveals a seat's hidden six.
type RevealHidden6Intent struct {
	Seat engine.Seat
}

// DeclareTichuIntent commits a seat to a normal Tichu.
type DeclareTichuIntent struct {
	Seat engine.Seat
}

// SubmitExchangeIntent gives a seat's three outgoing exchange cards.
type SubmitExchangeIntent struct {
	Seat  engine.Seat
	Cards [3]engine.Card
}

// PlayIntent plays a combination. WishRank is only consulted when Cards
// is a lone Mah Jong.
type PlayIntent struct {
	Seat     engine.Seat
	Cards    []engine.Card
	WishRank *uint8
}

// PassIntent declines to beat the current trick.
type PassIntent struct {
	Seat engine.Seat
}

// SelectDragonRecipientIntent resolves a pending Dragon gift.
type SelectDragonRecipientIntent struct {
	Seat      engine.Seat
	Recipient engine.Seat
}

func (DeclareGrandTichuIntent) isIntent()     {}
func (RevealHidden6Intent) isIntent()         {}
func (DeclareTichuIntent) isIntent()          {}
func (SubmitExchangeIntent) isIntent()        {}
func (PlayIntent) isIntent()                  {}
func (PassIntent) isIntent()                  {}
func (SelectDragonRecipientIntent) isIntent() {}
