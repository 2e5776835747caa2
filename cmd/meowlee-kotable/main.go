// Command meowlee-kotable prints, for a tuning, how hard each successive hit
// launches and whether that launch from mid-stage ends in a KO.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jcorbe333/Meowlee/assets"
	"github.com/jcorbe333/Meowlee/components"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/logging"
	"github.com/jcorbe333/Meowlee/match"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/jcorbe333/Meowlee/systems"
	"github.com/yohamta/donburi"
)

const frame = time.Second / 60

func main() {
	configPath := flag.String("config", "", "Tuning file (json, yaml or toml)")
	stageName := flag.String("stage", "battlefield", "Stage to launch on")
	hits := flag.Int("hits", 20, "Number of successive hits to tabulate")
	watch := flag.Duration("watch", 4*time.Second, "How long to follow each launch")
	flag.Parse()

	log := logging.New(os.Stderr, "info")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	stages, _, err := stage.LoadAll(assets.Stages, assets.StagesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load stages")
	}
	st, ok := stages[*stageName]
	if !ok {
		log.Fatal().Str("stage", *stageName).Msg("Unknown stage")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "hit\tdamage\tknockback\tlaunch x\tlaunch y\thitstun\tKO after\t")
	for n := 1; n <= *hits; n++ {
		before := float64(n-1) * cfg.Combat.AttackDamage
		after := before + cfg.Combat.AttackDamage
		kb := systems.Knockback(cfg.Combat, after)
		pop := max(cfg.Combat.MinKnockbackPop, kb*cfg.Combat.VerticalKnockbackRatio)

		koAfter := "-"
		at, ko, err := launch(cfg, st, before, *watch)
		if err != nil {
			log.Fatal().Err(err).Msg("Launch failed")
		}
		if ko {
			koAfter = at.Round(time.Millisecond).String()
		}

		fmt.Fprintf(tw, "%d\t%.0f%%\t%.1f\t%.1f\t%.1f\t%v\t%s\t\n",
			n, after, kb, kb, -pop, systems.Hitstun(cfg.Combat, after).Round(100*time.Microsecond), koAfter)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal().Err(err).Msg("Write table")
	}
}

// launch stands P2 on the widest platform at damage, lets P1 hit it once
// and reports when P2 lost a stock, if it did within watch.
func launch(cfg *config.Config, st *stage.Stage, damage float64, watch time.Duration) (time.Duration, bool, error) {
	m, err := match.New(cfg, st)
	if err != nil {
		return 0, false, err
	}

	var koAt time.Duration
	ko := false
	m.OnKO(func(e match.KOEvent) {
		if !ko {
			koAt, ko = e.At, true
		}
	})

	floor := widest(st.Platforms)
	top := floor.Y - cfg.Body.Height/2
	mid := floor.X + floor.W/2
	place(m.Fighter(match.Player1), mid-cfg.Body.HitboxOffsetX, top)
	place(m.Fighter(match.Player2), mid, top)
	components.Fighter.Get(m.Fighter(match.Player2)).Damage = damage

	attack := match.StaticInputs{match.Player1: {AttackPressed: true}}
	var now time.Duration
	for now < watch && !ko {
		now += frame
		m.Step(now, frame.Seconds(), attack)
		attack = nil
	}
	return koAt, ko, nil
}

func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.SetCenter(x, y)
	obj.Update()
	obj.Shape.SetPosition(obj.X, obj.Y)
}

func widest(platforms []stage.Rect) stage.Rect {
	var best stage.Rect
	for _, p := range platforms {
		if p.W > best.W {
			best = p
		}
	}
	return best
}
