// Command tichu runs a single four-seat Tichu match to completion using a
// deterministic, non-interactive intent source: on each turn the current
// seat plays its lowest-ranked legal single, or passes if none exists.
// This is a demonstration harness for the engine and session packages,
// not a strategy or bot — see SPEC_FULL.md's Non-goals.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/signalnine/tichu-engine/engine"
	"github.com/signalnine/tichu-engine/session"
)

// config holds the CLI's flag-bound settings.
type config struct {
	targetScore int
	logLevel    string
	seed        int64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "tichu",
		Short: "Play a demonstration Tichu match to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cfg)
		},
	}

	root.Flags().IntVar(&cfg.targetScore, "target-score", 1000, "match-ending point threshold")
	root.Flags().StringVar(&cfg.logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
	root.Flags().Int64Var(&cfg.seed, "seed", 0, "fixed RNG seed (0 = OS-seeded, non-reproducible)")

	return root
}

func newLogger(level string) zerolog.Logger {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		l = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(l).With().Timestamp().Logger()
}

func runMatch(cfg *config) error {
	logger := newLogger(cfg.logLevel)

	deal := newDealer(cfg.seed, logger)
	s := session.New(deal(), cfg.targetScore, logger)

	for {
		events, err := driveRound(s, deal, logger)
		if err != nil {
			return fmt.Errorf("driving round: %w", err)
		}
		if matchOver(events) {
			break
		}
	}

	logger.Info().
		Int("team_a", s.Match.TeamScore[engine.TeamA]).
		Int("team_b", s.Match.TeamScore[engine.TeamB]).
		Int("rounds", s.Match.RoundsPlayed).
		Msg("match complete")
	return nil
}

// newDealer returns a deal function backed by a seeded (or OS-seeded)
// Fisher-Yates shuffle, reproducible across a whole match when seed != 0.
func newDealer(seed int64, logger zerolog.Logger) func() []engine.Card {
	var rnd engine.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
		logger.Debug().Int64("seed", seed).Msg("using fixed seed")
	} else {
		rnd = engine.NewOSRand()
	}
	return func() []engine.Card {
		deck := engine.BuildDeck()
		engine.Shuffle(deck, rnd)
		return deck
	}
}

// driveRound answers every declaration window automatically (no Grand
// Tichu, no Tichu; each seat exchanges the first three cards of its hand,
// one each to the next seat, its partner and the previous seat), then
// plays the round to completion via the lowest-legal-single heuristic.
func driveRound(s *session.State, deal func() []engine.Card, logger zerolog.Logger) ([]engine.Event, error) {
	var all []engine.Event

	for seat := engine.Seat(0); seat < 4; seat++ {
		ev, err := s.Apply(session.RevealHidden6Intent{Seat: seat}, deal)
		if err != nil {
			return nil, err
		}
		all = append(all, ev...)
	}
	for seat := engine.Seat(0); seat < 4; seat++ {
		hand := s.Round.Hands[seat]
		var cards [3]engine.Card
		copy(cards[:], hand[:3])
		ev, err := s.Apply(session.SubmitExchangeIntent{Seat: seat, Cards: cards}, deal)
		if err != nil {
			return nil, err
		}
		all = append(all, ev...)
	}

	for s.Round.Phase == engine.PhasePlay {
		if s.Round.DragonPending != nil {
			giver := s.Round.DragonPending.Giver
			ev, err := s.Apply(session.SelectDragonRecipientIntent{
				Seat:      giver,
				Recipient: giver.Next(),
			}, deal)
			if err != nil {
				return nil, err
			}
			all = append(all, ev...)
			continue
		}

		seat := s.Round.CurrentSeat
		intent, ok := lowestLegalPlay(s.Round, seat)
		if !ok {
			ev, err := s.Apply(session.PassIntent{Seat: seat}, deal)
			if err != nil {
				return nil, err
			}
			all = append(all, ev...)
			continue
		}
		ev, err := s.Apply(intent, deal)
		if err != nil {
			return nil, err
		}
		all = append(all, ev...)

		if roundJustEnded(ev) {
			break
		}
	}

	logger.Debug().Int("events", len(all)).Msg("round driven to completion")
	return all, nil
}

// lowestLegalPlay returns the cheapest single seat can legally play right
// now, if any.
func lowestLegalPlay(r *engine.Round, seat engine.Seat) (session.PlayIntent, bool) {
	var (
		best    session.PlayIntent
		bestVal float64
		found   bool
	)
	hand := r.Hands[seat]
	for _, c := range hand {
		cards := []engine.Card{c}
		combo, err := engine.Classify(cards)
		if err != nil {
			continue
		}
		if len(r.CurrentTrick) > 0 {
			top := r.CurrentTrick[len(r.CurrentTrick)-1].Combo
			if engine.Compare(combo, top) != engine.GreaterThan {
				continue
			}
		}
		if found && combo.Value >= bestVal {
			continue
		}
		intent := session.PlayIntent{Seat: seat, Cards: cards}
		if c.Kind == engine.KindMahJong {
			rank := engine.RankTwo
			intent.WishRank = &rank
		}
		best, bestVal, found = intent, combo.Value, true
	}
	return best, found
}

func roundJustEnded(events []engine.Event) bool {
	for _, e := range events {
		if _, ok := e.(engine.RoundEnded); ok {
			return true
		}
	}
	return false
}

func matchOver(events []engine.Event) bool {
	for _, e := range events {
		if _, ok := e.(engine.MatchEnded); ok {
			return true
		}
	}
	return false
}
