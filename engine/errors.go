package engine

import errorsmod "cosmossdk.io/errors"

// RejectionCodespace is the cosmossdk.io/errors codespace for every
// rejection this package can return. Rejections are registered sentinels
// (errors.Is still matches through Wrap/Wrapf) rather than ad hoc
// errors.New calls, so a caller can switch on identity without parsing
// strings.
const RejectionCodespace = "tichu"

var (
	// ErrWrongPhase: intent not valid in the round's current phase.
	ErrWrongPhase = errorsmod.Register(RejectionCodespace, 1, "wrong phase")
	// ErrNotYourTurn: turn guard failed for a non-bomb play or pass.
	ErrNotYourTurn = errorsmod.Register(RejectionCodespace, 2, "not your turn")
	// ErrCardsNotInHand: multiset possession check failed.
	ErrCardsNotInHand = errorsmod.Register(RejectionCodespace, 3, "cards not in hand")
	// ErrInvalidCombination: classification failed.
	ErrInvalidCombination = errorsmod.Register(RejectionCodespace, 4, "invalid combination")
	// ErrDoesNotBeatCurrent: comparable but not strictly greater, or incomparable.
	ErrDoesNotBeatCurrent = errorsmod.Register(RejectionCodespace, 5, "does not beat current play")
	// ErrBombForbiddenDogInTrick: out-of-turn bomb while Dog is present.
	ErrBombForbiddenDogInTrick = errorsmod.Register(RejectionCodespace, 6, "bomb forbidden while Dog is in trick")
	// ErrMustLead: the seat holding lead priority attempted to pass.
	ErrMustLead = errorsmod.Register(RejectionCodespace, 7, "seat holding priority must play")
	// ErrWishUnfulfilled: seat holds the wished rank but didn't honor it.
	ErrWishUnfulfilled = errorsmod.Register(RejectionCodespace, 8, "wish unfulfilled")
	// ErrMahJongMustBePlayedFirst: first-trick obligation violated.
	ErrMahJongMustBePlayedFirst = errorsmod.Register(RejectionCodespace, 9, "Mah Jong must be played first")
	// ErrDragonMustChooseOpponent: other intents blocked until resolved.
	ErrDragonMustChooseOpponent = errorsmod.Register(RejectionCodespace, 10, "Dragon gift pending")
	// ErrDragonRecipientMustBeOpponent: bad SelectDragonRecipient target.
	ErrDragonRecipientMustBeOpponent = errorsmod.Register(RejectionCodespace, 11, "Dragon recipient must be an opponent")
	// ErrExchangeBad: wrong count, duplicates, or card not in hand.
	ErrExchangeBad = errorsmod.Register(RejectionCodespace, 12, "bad exchange submission")
	// ErrDeclarationOutOfWindow: Grand Tichu or Tichu declared outside its window.
	ErrDeclarationOutOfWindow = errorsmod.Register(RejectionCodespace, 13, "declaration out of window")
	// ErrEngineInvariant is fatal: an internal inconsistency was detected.
	// The caller must stop applying intents to this round.
	ErrEngineInvariant = errorsmod.Register(RejectionCodespace, 14, "engine invariant violated")
)
