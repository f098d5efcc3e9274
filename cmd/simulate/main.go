// simulate 无界面自动驾驶，用于数值平衡和冒烟检查
//
//	go run ./cmd/simulate --waves 10 --seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/scenes"
	"github.com/gonewx/fortune/pkg/systems"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	dataDir  = flag.String("data", "data", "数据表目录")
	seed     = flag.Int64("seed", 1, "随机种子")
	maxWaves = flag.Int("waves", 10, "最多进行的波次")
	maxMins  = flag.Float64("minutes", 30, "最长模拟时间（游戏内分钟）")
)

const frameMs = 1000.0 / 60

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	data, err := config.LoadCombatData(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events := &game.RecordingEvents{}
	scene, err := scenes.NewGameScene(scenes.Options{Data: data, Seed: *seed, Events: events})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	scene.Start()

	limitMs := *maxMins * 60 * 1000
	for scene.World().NowMs() < limitMs {
		switch scene.State() {
		case scenes.StateGameOver:
			report(scene, events)
			return
		case scenes.StateShop:
			for _, u := range shop(scene) {
				fmt.Printf("  shop: bought %s\n", u)
			}
			if scene.Wave() > *maxWaves {
				report(scene, events)
				return
			}
			continue
		}
		if scene.State() == scenes.StatePlaying && scene.Wave() > *maxWaves {
			break
		}

		scene.SetInput(steer(scene.World().EM, scene.Encounter().Player.Player()))
		scene.Update(frameMs)
	}
	report(scene, events)
}

func report(s *scenes.GameScene, events *game.RecordingEvents) {
	enc := s.Encounter()
	fmt.Printf("state:        %s\n", s.State())
	fmt.Printf("wave reached: %d\n", s.Wave())
	fmt.Printf("score:        %d\n", s.Score())
	fmt.Printf("kills:        %d\n", enc.Score.Kills())
	fmt.Printf("max combo:    %d\n", enc.Score.MaxCombo())
	fmt.Printf("max streak:   %d\n", enc.Streak.MaxStreak())
	fmt.Printf("collectibles: %d\n", enc.Score.Collectibles())
	fmt.Printf("boss bonus:   %d\n", enc.Score.BonusTotal(systems.BonusBoss))
	fmt.Printf("graze bonus:  %d\n", enc.Score.BonusTotal(systems.BonusGraze))
	fmt.Printf("sim time:     %.1fs\n", s.World().NowMs()/1000)

	for _, ev := range events.Of(game.EventWaveCleared) {
		p := ev.Payload.(game.WaveClearedPayload)
		fmt.Printf("  wave %2d: clear %3.0f%%  acc %3.0f%%  bonus %5d  perfect=%v fast=%v\n",
			p.Wave, p.Bonus.ClearPercent*100, p.Bonus.AccuracyPercent*100, p.Bonus.Total, p.Bonus.Perfect, p.Bonus.Fast)
	}
	fmt.Printf("boss kills:   %d\n", events.Count(game.EventBossDefeated))
	fmt.Printf("deaths:       %d\n", events.Count(game.EventPlayerDied))
}
