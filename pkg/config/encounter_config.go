package config

// 编队、Boss 与波次的编排常量

// Formation (编队运动)
const (
	// FormationExitY 成员越过该 Y 坐标即离场
	FormationExitY = PlayfieldHeight + 50

	// FormationEntryY 入场参考点：在此之上的编队额外下降
	FormationEntryY = 80.0
	// FormationEntrySpeed 入场阶段的额外下降速度
	FormationEntrySpeed = 80.0

	VSpacingX = 40.0
	VSpacingY = 30.0
	VSpeedX   = 50.0
	VSpeedY   = 40.0
	VMargin   = 100.0

	GridSpacingX   = 50.0
	GridSpacingY   = 40.0
	GridSpeedX     = 60.0
	GridMargin     = 150.0
	GridWobble     = 20.0
	GridWobbleRate = 1.2 // 弧度/秒

	CircleRadius      = 80.0
	CircleRotateSpeed = 0.5 // 弧度/秒
	CircleSpeedY      = 30.0

	WaveSpacingX  = 50.0
	WaveSpeedX    = 40.0
	WaveSpeedY    = 20.0
	WaveMargin    = 150.0
	WaveAmplitude = 30.0
	WavePhaseRate = 3.0 // 弧度/秒
	WavePhaseStep = 0.5 // 相邻成员的相位差
)

// Boss
const (
	BossEnterDurationMs = 2000.0
	BossEnterStartY     = -100.0
	BossEnterTargetY    = 100.0
	BossMarginX         = 120.0

	// BossTransitionBurst 阶段切换时的环形弹幕
	BossTransitionBurst      = 8
	BossTransitionBurstSpeed = 200.0

	// BossSpreadSideSpeed 扇形弹幕中第 i 发（距中心 i 个间距）获得 i 倍的水平速度
	BossSpreadSideSpeed = 60.0

	// BossRapidStaggerMs 连射子弹之间的间隔
	BossRapidStaggerMs = 100.0
	// BossRapidJitter 连射子弹的水平随机速度 ±
	BossRapidJitter = 50.0

	// BossBulletCeiling 存活子弹超过该数量时停止开火
	BossBulletCeiling = 100

	BossExplosionCount      = 5
	BossExplosionIntervalMs = 150.0
	// BossDefeatDelayMs 进入死亡演出到发出击败信号的时间
	BossDefeatDelayMs = 800.0

	// DroneOffsetX 无人机相对 Boss 的水平偏移 ±
	DroneOffsetX = 60.0
)

// Wave (波次)
const (
	// WaveTransitionDelayMs 清场后到下一波开始的间隔
	WaveTransitionDelayMs = 1500.0

	// FormationSpreadX 编队出生点相对中心的水平随机范围 ±
	FormationSpreadX = 100.0
	// FormationSpawnY 第一个编队的出生高度，后续编队每个再上移 FormationSpawnStepY
	FormationSpawnY     = -50.0
	FormationSpawnStepY = 100.0
)
