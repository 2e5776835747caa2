package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

const tallyKey = "tally"

// ItemStore is the slice of gdata.Manager the scoreboard needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Tally is the cross-session record of finished rounds.
type Tally struct {
	Wins   map[string]int `json:"wins"`
	Draws  int            `json:"draws"`
	Rounds int            `json:"rounds"`
}

// Scoreboard keeps the tally in memory and writes it through to the store
// after every round. A nil store keeps it in memory only.
type Scoreboard struct {
	store ItemStore
	log   zerolog.Logger
	tally Tally
}

// Open opens the per-user gdata store for appName.
func Open(appName string, log zerolog.Logger) (*Scoreboard, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewScoreboard(m, log), nil
}

// NewScoreboard loads any saved tally from store. Unreadable data starts a
// fresh tally.
func NewScoreboard(store ItemStore, log zerolog.Logger) *Scoreboard {
	s := &Scoreboard{
		store: store,
		log:   log,
		tally: Tally{Wins: map[string]int{}},
	}
	if store == nil {
		return s
	}

	data, err := store.LoadItem(tallyKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load win tally")
		return s
	}
	if len(data) == 0 {
		return s
	}

	var saved Tally
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn().Err(err).Msg("could not parse saved win tally")
		return s
	}
	if saved.Wins == nil {
		saved.Wins = map[string]int{}
	}
	s.tally = saved
	return s
}

// RecordWin credits a round to fighterID.
func (s *Scoreboard) RecordWin(fighterID string) error {
	s.tally.Wins[fighterID]++
	s.tally.Rounds++
	return s.save()
}

// RecordDraw counts a round nobody won.
func (s *Scoreboard) RecordDraw() error {
	s.tally.Draws++
	s.tally.Rounds++
	return s.save()
}

func (s *Scoreboard) Wins(fighterID string) int {
	return s.tally.Wins[fighterID]
}

// Tally returns a copy of the current record.
func (s *Scoreboard) Tally() Tally {
	wins := make(map[string]int, len(s.tally.Wins))
	for id, n := range s.tally.Wins {
		wins[id] = n
	}
	t := s.tally
	t.Wins = wins
	return t
}

func (s *Scoreboard) save() error {
	if s.store == nil {
		return nil
	}

	data, err := json.Marshal(s.tally)
	if err != nil {
		return fmt.Errorf("encode win tally: %w", err)
	}
	if err := s.store.SaveItem(tallyKey, data); err != nil {
		s.log.Warn().Err(err).Msg("could not save win tally")
		return fmt.Errorf("save win tally: %w", err)
	}
	return nil
}
