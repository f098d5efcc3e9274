package config

// 计分经济常量

// Combo (拾取连击)
const (
	// ComboChainWindowMs 两次拾取之间不超过该间隔则连击 +1
	ComboChainWindowMs = 1000.0
	// ComboDecayMs 无拾取超过该时间连击归零
	ComboDecayMs = 2000.0
	// ComboStep 每层连击增加的倍率
	ComboStep = 0.1
)

// Kill streak (击杀连杀)
const (
	StreakWindowMs      = 4000.0
	StreakStep          = 0.05
	StreakMaxMultiplier = 3.0
)

// StreakMilestones 连杀播报里程碑（升序）
var StreakMilestones = []int{5, 10, 15, 20, 25, 50}

// Wave clear & accuracy (清场与命中率奖励)
const (
	// WaveClearBasePerWave 清场基础奖励 = 波次 * WaveClearBasePerWave
	WaveClearBasePerWave = 500
	// WaveClearMinPercent 低于该清场比例不发放清场奖励
	WaveClearMinPercent = 0.8
	PerfectMultiplier   = 2.0
	FastMultiplier      = 1.5
	// FastClearMs 快速清场的时间上限
	FastClearMs = 30000.0

	AccuracyBase      = 1000
	AccuracyHalfMin   = 0.4
	AccuracyFullMin   = 0.6
	AccuracyDoubleMin = 0.8
)

// Graze (擦弹)
const (
	GrazeHitRadius = 20.0
	GrazeRadius    = 50.0
	GrazePoints    = 25
)

// Shop (商店)
const (
	// ScorePerCurrency 每多少分折算 1 货币
	ScorePerCurrency = 100

	CostWeapon    = 50
	CostSpeed     = 30
	CostHealth    = 40
	CostExtraLife = 100
)

// LeaderboardSize 排行榜保留条数
const LeaderboardSize = 10
