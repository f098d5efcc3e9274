package game

import "github.com/gonewx/fortune/pkg/types"

// EventType 语义事件类型
// 核心只发出事件，从不依赖表现层处理成功
type EventType int

const (
	EventScoreChanged EventType = iota
	EventWaveStarted
	EventWaveCleared
	EventStreakMilestone
	EventBossPhaseChanged
	EventBossDefeated
	EventPlayerHit
	EventPlayerDied
	EventGraze
	EventShopOpened
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventScoreChanged:
		return "score_changed"
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventStreakMilestone:
		return "streak_milestone"
	case EventBossPhaseChanged:
		return "boss_phase_changed"
	case EventBossDefeated:
		return "boss_defeated"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDied:
		return "player_died"
	case EventGraze:
		return "graze"
	case EventShopOpened:
		return "shop_opened"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event 事件，Payload 为下列 *Payload 结构体之一
type Event struct {
	Type    EventType
	Payload any
}

// ScoreChangedPayload 分数变化
type ScoreChangedPayload struct {
	Score int // 变化后的总分
	Delta int // 本次增加的分数（已乘倍率）
}

// WaveStartedPayload 波次开始
type WaveStartedPayload struct {
	Wave     int
	BossWave bool
	Enemies  int // 本波需要清除的敌机数
}

// WaveClearedPayload 波次结束
type WaveClearedPayload struct {
	Wave  int
	Bonus BonusBreakdown
}

// BonusBreakdown 波次结算明细
// 擦弹分在发生时已即时计入，这里只做展示，不再重复加分
type BonusBreakdown struct {
	Wave            int
	ClearPercent    float64 // 击杀数 / 总数
	Perfect         bool
	Fast            bool
	WaveClear       int // 清场奖励
	AccuracyPercent float64
	Accuracy        int // 命中率奖励
	GrazeCount      int
	GrazePoints     int
	Total           int // WaveClear + Accuracy
}

// StreakMilestonePayload 连杀里程碑
type StreakMilestonePayload struct {
	Streak     int
	Multiplier float64
}

// BossPhaseChangedPayload Boss 阶段变化
type BossPhaseChangedPayload struct {
	Boss  types.BossType
	Phase int
}

// BossDefeatedPayload Boss 被击败
type BossDefeatedPayload struct {
	Boss  types.BossType
	Score int // 配置的击败分
}

// PlayerHitPayload 玩家受到伤害
type PlayerHitPayload struct {
	Damage int
	Health int // 受伤后的生命值
}

// PlayerDiedPayload 玩家失去一条命
type PlayerDiedPayload struct {
	LivesLeft int
}

// GrazePayload 擦弹奖励
type GrazePayload struct {
	Points int
	Count  int // 本波累计擦弹次数
}

// ShopOpenedPayload 商店打开
type ShopOpenedPayload struct {
	Currency int
}

// GameOverPayload 游戏结束
type GameOverPayload struct {
	Score int
	Wave  int
	Rank  int // 排行榜名次（1 起），未上榜为 0
}
