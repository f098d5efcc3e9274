package systems

import (
	"math"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/types"
)

// BonusCategory 奖励分类，用于分类统计
type BonusCategory string

const (
	BonusWaveClear BonusCategory = "wave_clear"
	BonusAccuracy  BonusCategory = "accuracy"
	BonusGraze     BonusCategory = "graze"
	BonusBoss      BonusCategory = "boss"
)

// ScoreSystem 分数与拾取连击
//
// 连击只由拾取推进，击杀不影响连击；倍率 = 1 + combo*0.1。
type ScoreSystem struct {
	world *World

	score    int
	combo    int
	maxCombo int

	comboTimerMs   float64 // 连击剩余时间，归零时连击清空
	lastPickupMs   float64
	hasPickedUp    bool
	kills          int
	collectibles   int
	bonusTotals    map[BonusCategory]int
	collectedByTyp map[types.CollectibleType]int
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(w *World) *ScoreSystem {
	return &ScoreSystem{
		world:          w,
		bonusTotals:    make(map[BonusCategory]int),
		collectedByTyp: make(map[types.CollectibleType]int),
	}
}

// ComboMultiplier 当前连击倍率
func (s *ScoreSystem) ComboMultiplier() float64 {
	return 1 + float64(s.combo)*config.ComboStep
}

// AddScore 按连击倍率加分，返回实际增加的分数
func (s *ScoreSystem) AddScore(points int) int {
	return s.add(int(math.Floor(float64(points) * s.ComboMultiplier())))
}

// AddKillScore 击杀得分：points × 连杀倍率 × 连击倍率
func (s *ScoreSystem) AddKillScore(points int, streakMultiplier float64) int {
	s.kills++
	return s.add(int(math.Floor(float64(points) * streakMultiplier * s.ComboMultiplier())))
}

// AddBonus 奖励分不乘倍率
func (s *ScoreSystem) AddBonus(points int, category BonusCategory) int {
	if points <= 0 {
		return 0
	}
	s.bonusTotals[category] += points
	return s.add(points)
}

// AddCollectible 拾取掉落物：先推进连击，再按新倍率计分
func (s *ScoreSystem) AddCollectible(value int, collectibleType types.CollectibleType) int {
	now := s.world.NowMs()
	if s.hasPickedUp && now-s.lastPickupMs < config.ComboChainWindowMs {
		s.combo++
	} else {
		s.combo = 1
	}
	s.hasPickedUp = true
	s.lastPickupMs = now
	s.comboTimerMs = config.ComboDecayMs
	s.maxCombo = max(s.maxCombo, s.combo)

	s.collectibles++
	s.collectedByTyp[collectibleType]++
	return s.AddScore(value)
}

func (s *ScoreSystem) add(delta int) int {
	if delta <= 0 {
		return 0
	}
	s.score += delta
	s.world.Emit(game.EventScoreChanged, game.ScoreChangedPayload{Score: s.score, Delta: delta})
	return delta
}

// Update 推进连击衰减
func (s *ScoreSystem) Update(deltaMs float64) {
	if s.combo == 0 {
		return
	}
	s.comboTimerMs -= deltaMs
	if s.comboTimerMs <= 0 {
		s.comboTimerMs = 0
		s.combo = 0
	}
}

func (s *ScoreSystem) Score() int        { return s.score }
func (s *ScoreSystem) Combo() int        { return s.combo }
func (s *ScoreSystem) MaxCombo() int     { return s.maxCombo }
func (s *ScoreSystem) Kills() int        { return s.kills }
func (s *ScoreSystem) Collectibles() int { return s.collectibles }

// BonusTotal 某一分类累计的奖励分
func (s *ScoreSystem) BonusTotal(category BonusCategory) int {
	return s.bonusTotals[category]
}

// CollectedOf 某类掉落物的累计拾取数
func (s *ScoreSystem) CollectedOf(t types.CollectibleType) int {
	return s.collectedByTyp[t]
}
