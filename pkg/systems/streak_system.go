package systems

import (
	"log"
	"math"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/game"
)

// StreakSystem 连杀
// 间隔小于窗口的击杀累加连杀，否则从 1 开始；计时归零时连杀清零。
type StreakSystem struct {
	world *World

	streak        int
	maxStreak     int
	timerMs       float64
	lastKillMs    float64
	lastMilestone int
}

func NewStreakSystem(w *World) *StreakSystem {
	return &StreakSystem{world: w}
}

// RegisterKill 记录一次击杀，返回新的倍率和本次达到的里程碑（没有为 0）
func (s *StreakSystem) RegisterKill() (float64, int) {
	now := s.world.NowMs()
	if s.streak > 0 && now-s.lastKillMs < config.StreakWindowMs {
		s.streak++
	} else {
		s.streak = 1
	}
	s.lastKillMs = now
	s.timerMs = config.StreakWindowMs
	s.maxStreak = max(s.maxStreak, s.streak)

	milestone := 0
	for _, m := range config.StreakMilestones {
		if s.streak == m && m > s.lastMilestone {
			milestone = m
			s.lastMilestone = m
			break
		}
	}

	multiplier := s.Multiplier()
	if milestone > 0 {
		log.Printf("[StreakSystem] Kill streak %d (x%.2f)", milestone, multiplier)
		s.world.Audio.Play(game.SoundPowerUp)
		s.world.Emit(game.EventStreakMilestone, game.StreakMilestonePayload{Streak: milestone, Multiplier: multiplier})
	}
	return multiplier, milestone
}

// Multiplier 当前连杀倍率，上限 3.0
func (s *StreakSystem) Multiplier() float64 {
	return math.Min(1+float64(s.streak)*config.StreakStep, config.StreakMaxMultiplier)
}

// Update 推进连杀计时
func (s *StreakSystem) Update(deltaMs float64) {
	if s.streak == 0 {
		return
	}
	s.timerMs -= deltaMs
	if s.timerMs <= 0 {
		s.timerMs = 0
		s.streak = 0
		s.lastMilestone = 0
	}
}

func (s *StreakSystem) Streak() int    { return s.streak }
func (s *StreakSystem) MaxStreak() int { return s.maxStreak }
