// Package ledger holds the model core of homegame: the live roster of an
// in-progress poker night, the collection of finished games, and the
// statistics derived from them. All money amounts are dollars; derived
// values (totals, profit/loss, balance) are computed on access so they can
// never drift from the fields they are derived from.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/homegame/internal/recordid"
)

// Store persists the finished-game collection. The live roster is never
// persisted; an in-progress game is lost if the process dies.
type Store interface {
	Save(games []GameLog) error
	Load() ([]GameLog, error)
}

const defaultRosterSize = 4

// Session is the aggregate root for one night at the table: the live
// roster, the pending buy-in entry, and every saved game. Its methods are
// the only write path; the presentation layer reads snapshots and calls
// mutators on discrete user actions.
type Session struct {
	logger zerolog.Logger
	clock  quartz.Clock
	store  Store
	ids    *recordid.Generator

	rosterSize int

	players   []Player
	buyInText string
	location  string
	startedAt time.Time
	games     []GameLog
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the clock used for game-end timestamps and durations.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithRosterSize sets how many default players a fresh roster starts with.
func WithRosterSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.rosterSize = n
		}
	}
}

// WithIDGenerator injects the record ID generator, for deterministic tests.
func WithIDGenerator(gen *recordid.Generator) Option {
	return func(s *Session) { s.ids = gen }
}

// NewSession creates a session, hydrates prior games from the store, and
// seats a fresh default roster. A load failure degrades to an empty history
// rather than blocking startup.
func NewSession(logger zerolog.Logger, store Store, opts ...Option) *Session {
	s := &Session{
		logger:     logger,
		clock:      quartz.NewReal(),
		store:      store,
		ids:        recordid.NewGenerator(nil),
		rosterSize: defaultRosterSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	games, err := store.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load game history, starting empty")
	}
	s.games = games

	s.ResetGame()
	return s
}

// Players returns a snapshot of the live roster in seating order.
func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// Games returns a snapshot of the saved games in file order.
func (s *Session) Games() []GameLog {
	out := make([]GameLog, len(s.games))
	copy(out, s.games)
	return out
}

// BuyInText returns the pending buy-in entry.
func (s *Session) BuyInText() string { return s.buyInText }

// SetBuyInText records the pending buy-in entry. Parsing is deferred until
// the value is used, so partial input is never an error.
func (s *Session) SetBuyInText(text string) { s.buyInText = text }

// Location returns the label saved with the next finished game.
func (s *Session) Location() string { return s.location }

// SetLocation sets the label saved with the next finished game.
func (s *Session) SetLocation(location string) { s.location = location }

// AddPlayer seats a new player named by position ("Player 5" for the fifth
// seat, regardless of earlier deletions). The buy-in defaults to the pending
// buy-in entry when it parses, zero otherwise.
func (s *Session) AddPlayer() Player {
	amount, _ := parseAmount(s.buyInText)
	p := newPlayer(len(s.players)+1, amount)
	s.players = append(s.players, p)
	return p
}

// RemovePlayer removes the first player whose ID matches. Removal is by
// identity, never by position, so an edit racing a deletion cannot hit the
// wrong seat. A missing ID is a no-op.
func (s *Session) RemovePlayer(id string) {
	for i, p := range s.players {
		if p.ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return
		}
	}
}

// SetPlayerName renames the live player with the given ID. No-op on a miss.
func (s *Session) SetPlayerName(id, name string) {
	if p := s.findPlayer(id); p != nil {
		p.Name = name
	}
}

// SetPlayerBuyIn parses text as the player's buy-in. Unparseable input
// leaves the current value untouched.
func (s *Session) SetPlayerBuyIn(id, text string) {
	amount, ok := parseAmount(text)
	if !ok {
		return
	}
	if p := s.findPlayer(id); p != nil {
		p.BuyIn = amount
	}
}

// SetPlayerChipCount parses text as the player's chip count. Unparseable
// input leaves the current value untouched.
func (s *Session) SetPlayerChipCount(id, text string) {
	amount, ok := parseAmount(text)
	if !ok {
		return
	}
	if p := s.findPlayer(id); p != nil {
		p.ChipCount = amount
	}
}

// SetPlayerPaid flags whether the player settled up outside the chip ledger.
func (s *Session) SetPlayerPaid(id string, paid bool) {
	if p := s.findPlayer(id); p != nil {
		p.PaidExternally = paid
	}
}

// PopulateAmounts parses text as a buy-in and applies it to every player
// whose buy-in is still zero, leaving set amounts untouched. Unparseable
// text is a no-op. A deliberately entered zero is indistinguishable from
// "unset" and will be overwritten; that ambiguity is accepted.
func (s *Session) PopulateAmounts(text string) {
	amount, ok := parseAmount(text)
	if !ok {
		return
	}
	for i := range s.players {
		if s.players[i].BuyIn == 0 {
			s.players[i].BuyIn = amount
		}
	}
}

// TotalInPlay sums every live player's buy-in.
func (s *Session) TotalInPlay() float64 {
	var total float64
	for _, p := range s.players {
		total += p.BuyIn
	}
	return total
}

// TotalChipCount sums every live player's chip count.
func (s *Session) TotalChipCount() float64 {
	var total float64
	for _, p := range s.players {
		total += p.ChipCount
	}
	return total
}

// ResetGame clears the pending buy-in entry and location and replaces the
// roster with fresh default players carrying new IDs.
func (s *Session) ResetGame() {
	s.buyInText = ""
	s.location = ""
	s.startedAt = s.clock.Now()
	s.players = make([]Player, 0, s.rosterSize)
	for i := 0; i < s.rosterSize; i++ {
		s.players = append(s.players, newPlayer(i+1, 0))
	}
}

// EndAndSaveGame snapshots the roster into a new GameLog, appends it to the
// history, persists the collection, and resets for the next game. The
// in-memory append and the reset happen even when the save fails; the error
// is returned so the caller can surface it, but it never blocks the action.
func (s *Session) EndAndSaveGame() (GameLog, error) {
	now := s.clock.Now()

	results := make([]PlayerResult, 0, len(s.players))
	for _, p := range s.players {
		results = append(results, PlayerResult{
			ID:             p.ID,
			Name:           p.Name,
			BuyIn:          p.BuyIn,
			FinalChipCount: p.ChipCount,
			PaidExternally: p.PaidExternally,
		})
	}

	game := GameLog{
		ID:              s.ids.New(),
		EndedAt:         now,
		DurationMinutes: int(now.Sub(s.startedAt).Minutes()),
		Location:        s.location,
		Results:         results,
		TotalBuyIn:      s.TotalInPlay(),
		TotalChipCount:  s.TotalChipCount(),
	}

	s.games = append(s.games, game)
	err := s.persist()
	s.ResetGame()
	return game, err
}

// UpdatePlayerName rewrites the name on one result inside one saved game
// and re-persists the history. A miss on either ID is a no-op.
func (s *Session) UpdatePlayerName(gameID, resultID, newName string) error {
	for gi := range s.games {
		if s.games[gi].ID != gameID {
			continue
		}
		for ri := range s.games[gi].Results {
			if s.games[gi].Results[ri].ID == resultID {
				s.games[gi].Results[ri].Name = newName
				return s.persist()
			}
		}
		return nil
	}
	return nil
}

// DeleteGame removes a saved game by ID and re-persists the history. A miss
// is a no-op.
func (s *Session) DeleteGame(gameID string) error {
	for i, g := range s.games {
		if g.ID == gameID {
			s.games = append(s.games[:i], s.games[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// UniquePlayerNames returns every name appearing across all saved results,
// deduplicated and sorted. Recomputed on demand; at home-game scale there is
// nothing worth indexing.
func (s *Session) UniquePlayerNames() []string {
	return UniqueNames(s.games)
}

// PlayerStats aggregates the saved history for one player name.
func (s *Session) PlayerStats(name string) PlayerStats {
	return StatsFor(name, s.games)
}

func (s *Session) persist() error {
	if err := s.store.Save(s.games); err != nil {
		s.logger.Error().Err(err).Msg("failed to save game history")
		return err
	}
	return nil
}

func (s *Session) findPlayer(id string) *Player {
	for i := range s.players {
		if s.players[i].ID == id {
			return &s.players[i]
		}
	}
	return nil
}

// parseAmount parses a currency entry. Blank, malformed, and negative input
// all mean "no value supplied".
func parseAmount(text string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}
