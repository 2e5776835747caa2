package scenes

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/controls"
	"github.com/jcorbe333/Meowlee/input"
	"github.com/jcorbe333/Meowlee/match"
	"github.com/jcorbe333/Meowlee/persistence"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/rs/zerolog"
)

// BattleOptions configures a BattleScene.
type BattleOptions struct {
	Log   zerolog.Logger
	Board *persistence.Scoreboard // nil keeps no tally
	Input input.Config
}

// BattleScene is the whole game: one local two-player round on a stage,
// restartable with R once decided.
type BattleScene struct {
	cfg   *config.Config
	stage *stage.Stage
	log   zerolog.Logger
	board *persistence.Scoreboard

	match    *match.Match
	controls controls.State
	poller   *input.Poller

	now   time.Duration
	tick  time.Duration
	debug bool

	effects effects
}

func NewBattleScene(cfg *config.Config, st *stage.Stage, opts BattleOptions) (*BattleScene, error) {
	s := &BattleScene{
		cfg:    cfg,
		stage:  st,
		log:    opts.Log,
		board:  opts.Board,
		poller: input.NewPoller(opts.Input),
		tick:   time.Second / time.Duration(ebiten.TPS()),
	}

	m, err := match.New(cfg, st, match.WithLogger(opts.Log))
	if err != nil {
		return nil, fmt.Errorf("battle scene: %w", err)
	}
	s.attach(m)
	return s, nil
}

// attach makes m the live round and hooks presentation to its events.
func (s *BattleScene) attach(m *match.Match) {
	s.match = m
	s.now = 0
	s.effects = effects{}

	m.OnHit(func(match.HitEvent) {
		s.effects.shake()
	})
	m.OnKO(func(match.KOEvent) {
		s.effects.flash()
	})
	m.OnRoundOver(func(e match.RoundOverEvent) {
		s.recordResult(e)
	})
}

func (s *BattleScene) recordResult(e match.RoundOverEvent) {
	if s.board == nil {
		return
	}
	var err error
	if e.Draw {
		err = s.board.RecordDraw()
	} else {
		err = s.board.RecordWin(e.WinnerID)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("round result not saved")
	}
}

func (s *BattleScene) Update() error {
	s.poller.Poll(&s.controls)
	if s.poller.DebugPressed() {
		s.debug = !s.debug
	}
	dt := s.tick.Seconds()
	s.effects.update(float32(dt))

	if s.match.RoundOver() {
		if s.poller.RestartPressed() {
			return s.restart()
		}
		return nil
	}

	s.now += s.tick
	s.match.Step(s.now, dt, &s.controls)
	return nil
}

func (s *BattleScene) restart() error {
	m, err := s.match.Restart()
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	s.attach(m)
	return nil
}

func (s *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.Background)

	snap := s.match.Snapshot()
	drawSky(screen, s.cfg.Arena)

	offsetX := float32(s.effects.shakeOffset())
	drawPlatforms(screen, snap.Platforms, offsetX)
	for _, f := range snap.Fighters {
		drawFighter(screen, f, snap.Now, offsetX)
	}

	if s.debug {
		drawDebug(s.match.World(), screen, offsetX)
	}

	drawHUD(screen, s.cfg, snap, s.board)
	drawFlash(screen, s.cfg.Arena, s.effects.flashAlpha())
}

// Layout returns the fixed logical screen size.
func (s *BattleScene) Layout(_, _ int) (int, int) {
	return int(s.cfg.Arena.Width), int(s.cfg.Arena.Height)
}
