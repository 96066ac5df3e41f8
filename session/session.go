package session

import (
	"github.com/rs/zerolog"

	"github.com/signalnine/tichu-engine/engine"
)

// State is one table's full session: the current round, the running
// match score, and the logger every accepted transition writes through.
// Rejections are reported as errors from Apply, never logged as state
// transitions, since they never mutate Round or Match.
type State struct {
	Match  *engine.Match
	Round  *engine.Round
	Logger zerolog.Logger
}

// New starts a session with a freshly dealt round and a match targeting
// targetScore (1000 under the standard rules).
func New(deck []engine.Card, targetScore int, logger zerolog.Logger) *State {
	return &State{
		Match:  engine.NewMatch(targetScore),
		Round:  engine.NewRound(deck),
		Logger: logger,
	}
}

// Apply dispatches intent to the matching engine entry point, folds in
// round/match-end bookkeeping when a play or pass ends the round, and
// returns every event the transition produced. A non-nil error means the
// intent was rejected and Round/Match are unchanged.
func (s *State) Apply(intent Intent, deal func() []engine.Card) ([]engine.Event, error) {
	var (
		events []engine.Event
		err    error
	)

	switch it := intent.(type) {
	case DeclareGrandTichuIntent:
		err = engine.DeclareGrandTichu(s.Round, it.Seat)
	case RevealHidden6Intent:
		err = engine.RevealHidden6(s.Round, it.Seat)
	case DeclareTichuIntent:
		err = engine.DeclareTichu(s.Round, it.Seat)
	case SubmitExchangeIntent:
		err = engine.SubmitExchange(s.Round, it.Seat, it.Cards)
	case PlayIntent:
		events, err = engine.ApplyPlay(s.Round, it.Seat, it.Cards, it.WishRank)
	case PassIntent:
		events, err = engine.ApplyPass(s.Round, it.Seat)
	case SelectDragonRecipientIntent:
		events, err = engine.SelectDragonRecipient(s.Round, it.Seat, it.Recipient)
	default:
		return nil, engine.ErrEngineInvariant.Wrap("unrecognized intent type")
	}

	if err != nil {
		s.Logger.Debug().
			Str("intent", intentName(intent)).
			Str("seat", intentSeat(intent).String()).
			Err(err).
			Msg("intent rejected")
		return nil, err
	}
	for _, ev := range events {
		s.logEvent(ev)
	}

	if engine.RoundShouldEnd(s.Round) && s.Round.Phase != engine.PhaseRoundEnded {
		roundEvents, endErr := s.endRound(deal)
		if endErr != nil {
			return events, endErr
		}
		events = append(events, roundEvents...)
	}
	return events, nil
}

// endRound resolves the finished round into a match delta, emits
// RoundEnded (and MatchEnded if the match is over), and otherwise deals
// the next round via deal.
func (s *State) endRound(deal func() []engine.Card) ([]engine.Event, error) {
	deltas, finishOrder, err := engine.EndRound(s.Round)
	if err != nil {
		return nil, err
	}
	s.Match.ApplyRoundResult(deltas)

	roundEnded := engine.RoundEnded{TeamDeltas: deltas, FinishOrder: finishOrder}
	s.logEvent(roundEnded)
	events := []engine.Event{roundEnded}

	if winner, ok := s.Match.Winner(); ok {
		matchEnded := engine.MatchEnded{Winner: winner}
		s.logEvent(matchEnded)
		events = append(events, matchEnded)
		return events, nil
	}

	s.Round = engine.NewRound(deal())
	return events, nil
}

func intentName(intent Intent) string {
	switch intent.(type) {
	case DeclareGrandTichuIntent:
		return "declare_grand_tichu"
	case RevealHidden6Intent:
		return "reveal_hidden_6"
	case DeclareTichuIntent:
		return "declare_tichu"
	case SubmitExchangeIntent:
		return "submit_exchange"
	case PlayIntent:
		return "play"
	case PassIntent:
		return "pass"
	case SelectDragonRecipientIntent:
		return "select_dragon_recipient"
	default:
		return "unknown"
	}
}

func intentSeat(intent Intent) engine.Seat {
	switch it := intent.(type) {
	case DeclareGrandTichuIntent:
		return it.Seat
	case RevealHidden6Intent:
		return it.Seat
	case DeclareTichuIntent:
		return it.Seat
	case SubmitExchangeIntent:
		return it.Seat
	case PlayIntent:
		return it.Seat
	case PassIntent:
		return it.Seat
	case SelectDragonRecipientIntent:
		return it.Seat
	default:
		return 0
	}
}

// logEvent writes a structured debug line per event. Hidden hand
// contents never appear here, only seat indices and counts.
func (s *State) logEvent(ev engine.Event) {
	l := s.Logger.Debug()
	switch e := ev.(type) {
	case engine.TrickWon:
		l.Str("event", "trick_won").Str("winner", e.Winner.String()).Msg("trick resolved")
	case engine.DragonGiftPending:
		l.Str("event", "dragon_gift_pending").Str("giver", e.Giver.String()).Msg("dragon awaiting recipient")
	case engine.WishSet:
		l.Str("event", "wish_set").Uint8("rank", e.Rank).Msg("wish set")
	case engine.WishCleared:
		l.Str("event", "wish_cleared").Msg("wish cleared")
	case engine.SeatFinished:
		l.Str("event", "seat_finished").Str("seat", e.Seat.String()).Msg("seat emptied its hand")
	case engine.DogLeadTransferred:
		l.Str("event", "dog_lead_transferred").Str("to", e.To.String()).Msg("lead transferred")
	case engine.RoundEnded:
		l.Str("event", "round_ended").
			Int("delta_a", e.TeamDeltas[engine.TeamA]).
			Int("delta_b", e.TeamDeltas[engine.TeamB]).
			Msg("round ended")
	case engine.MatchEnded:
		l.Str("event", "match_ended").Str("winner", e.Winner.String()).Msg("match ended")
	default:
		l.Str("event", "unknown").Msg("unrecognized event type")
	}
}
