package systems

import (
	"log"
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/game"
)

// BonusSystem 命中率、擦弹与波次结算
// 射击与命中统计跨波次累计，受伤标记与擦弹记录按波次重置。
type BonusSystem struct {
	world *World
	score *ScoreSystem

	shotsFired int
	shotsHit   int

	wave         int
	waveStartMs  float64
	damageTaken  bool
	grazeCount   int
	grazePoints  int
	totalGrazes  int
	grazedBullet map[ecs.EntityID]struct{}
}

// NewBonusSystem 创建奖励系统
func NewBonusSystem(w *World, score *ScoreSystem) *BonusSystem {
	return &BonusSystem{world: w, score: score, grazedBullet: make(map[ecs.EntityID]struct{})}
}

// StartWave 重置按波次统计的状态
func (s *BonusSystem) StartWave(n int) {
	s.wave = n
	s.waveStartMs = s.world.NowMs()
	s.damageTaken = false
	s.grazeCount = 0
	s.grazePoints = 0
	clear(s.grazedBullet)
}

func (s *BonusSystem) RecordShotFired()   { s.shotsFired++ }
func (s *BonusSystem) RecordShotHit()     { s.shotsHit++ }
func (s *BonusSystem) RecordDamageTaken() { s.damageTaken = true }

// Accuracy 累计命中率，未射击时为 0
func (s *BonusSystem) Accuracy() float64 {
	if s.shotsFired == 0 {
		return 0
	}
	return float64(s.shotsHit) / float64(s.shotsFired)
}

func (s *BonusSystem) ShotsFired() int   { return s.shotsFired }
func (s *BonusSystem) ShotsHit() int     { return s.shotsHit }
func (s *BonusSystem) DamageTaken() bool { return s.damageTaken }
func (s *BonusSystem) GrazeCount() int   { return s.grazeCount }
func (s *BonusSystem) TotalGrazes() int  { return s.totalGrazes }

// CheckGraze 检查敌方子弹从玩家身边擦过
// 距离在 (命中半径, 擦弹半径) 之间计一次擦弹，每颗子弹最多计一次，分数即时发放。
// 返回本次新增的擦弹数。
func (s *BonusSystem) CheckGraze(playerID ecs.EntityID) int {
	em := s.world.EM
	if !em.IsAlive(playerID) {
		return 0
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if !ok || player.Invincible || player.IsDying {
		return 0
	}
	ppos, ok := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if !ok {
		return 0
	}

	added := 0
	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		if bullet.Owner == components.OwnerPlayer {
			continue
		}
		if _, done := s.grazedBullet[id]; done {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		d := math.Hypot(pos.X-ppos.X, pos.Y-ppos.Y)
		if d <= config.GrazeHitRadius || d >= config.GrazeRadius {
			continue
		}

		s.grazedBullet[id] = struct{}{}
		s.grazeCount++
		s.totalGrazes++
		s.grazePoints += s.score.AddBonus(config.GrazePoints, BonusGraze)
		added++
		s.world.Emit(game.EventGraze, game.GrazePayload{Points: config.GrazePoints, Count: s.grazeCount})
	}
	return added
}

// CalculateWaveBonuses 计算波次结算明细（不加分）
func (s *BonusSystem) CalculateWaveBonuses(killed, total int) game.BonusBreakdown {
	clearPercent := 1.0
	if total > 0 {
		clearPercent = float64(killed) / float64(total)
	}
	elapsed := s.world.NowMs() - s.waveStartMs

	b := game.BonusBreakdown{
		Wave:            s.wave,
		ClearPercent:    clearPercent,
		Perfect:         clearPercent >= 1 && !s.damageTaken,
		Fast:            elapsed < config.FastClearMs,
		AccuracyPercent: s.Accuracy(),
		GrazeCount:      s.grazeCount,
		GrazePoints:     s.grazePoints,
	}

	if clearPercent >= config.WaveClearMinPercent {
		bonus := float64(config.WaveClearBasePerWave * s.wave)
		if b.Perfect {
			bonus = math.Floor(bonus * config.PerfectMultiplier)
		}
		if b.Fast {
			bonus = math.Floor(bonus * config.FastMultiplier)
		}
		b.WaveClear = int(bonus)
	}

	switch acc := b.AccuracyPercent; {
	case acc >= config.AccuracyDoubleMin:
		b.Accuracy = config.AccuracyBase * 2
	case acc >= config.AccuracyFullMin:
		b.Accuracy = config.AccuracyBase
	case acc >= config.AccuracyHalfMin:
		b.Accuracy = config.AccuracyBase / 2
	}

	b.Total = b.WaveClear + b.Accuracy
	return b
}

// SettleWave 计算并发放波次奖励
func (s *BonusSystem) SettleWave(killed, total int) game.BonusBreakdown {
	b := s.CalculateWaveBonuses(killed, total)
	s.score.AddBonus(b.WaveClear, BonusWaveClear)
	s.score.AddBonus(b.Accuracy, BonusAccuracy)
	log.Printf("[BonusSystem] Wave %d settled: clear=%d accuracy=%d (%.0f%%) grazes=%d",
		b.Wave, b.WaveClear, b.Accuracy, b.AccuracyPercent*100, b.GrazeCount)
	return b
}
