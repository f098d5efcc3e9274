package config

// 游戏场与战斗常量
// 所有坐标使用屏幕像素，原点在左上角，Y 轴向下；时间单位为毫秒，速度为像素/秒

// Playfield (游戏场)
const (
	// PlayfieldWidth 游戏场宽度
	PlayfieldWidth = 800.0

	// PlayfieldHeight 游戏场高度
	PlayfieldHeight = 600.0

	// BoundsMargin 出界判定的外扩距离
	// 实体越过 [−BoundsMargin, 边长+BoundsMargin] 即视为离场
	BoundsMargin = 50.0

	// CenterX 游戏场水平中心
	CenterX = PlayfieldWidth / 2
)

// Player (玩家飞船)
const (
	PlayerMaxHealth   = 100
	PlayerLives       = 3
	PlayerSpeed       = 300.0
	PlayerFireRateMs  = 200.0
	PlayerBulletSpeed = 600.0
	PlayerRadius      = 16.0

	// PlayerSpawnY 出生/复活点距离底边的位置
	PlayerSpawnY = PlayfieldHeight - 80

	// PlayerRespawnDelayMs 失去一条命后到复活的时间
	PlayerRespawnDelayMs = 1000.0

	// PlayerInvincibleMs 复活后的无敌时间
	PlayerInvincibleMs = 2000.0

	// SpeedUpgradeAmount 商店速度升级的增量
	SpeedUpgradeAmount = 50.0
)

// Damage (固定伤害)
const (
	PlayerBulletDamage  = 10
	EnemyBulletDamage   = 10
	BossBulletDamage    = 15
	BodyCollisionDamage = 20
)

// Projectiles & colliders (子弹与碰撞半径)
const (
	BulletRadius      = 4.0
	EnemyRadius       = 16.0
	LargeEnemyRadius  = 22.0
	BossRadius        = 60.0
	CollectibleRadius = 12.0

	// EnemyBulletSpeed 普通敌机子弹的下行速度
	EnemyBulletSpeed = 400.0
	// EnemyBulletOffsetY 敌机子弹生成点相对机身的下移
	EnemyBulletOffsetY = 30.0
)

// Collectibles (掉落物运动)
const (
	CollectibleLifetimeMs = 5000.0
	CollectibleFallSpeed  = 150.0
	// CollectibleDriftX 水平漂移速度的随机范围 ±
	CollectibleDriftX = 25.0

	// MagnetRange 进入该距离后被玩家吸引
	MagnetRange = 80.0
	// MagnetStrength 吸引速度 = MagnetStrength * (1 - 距离/MagnetRange)
	MagnetStrength = 400.0
)

// InBounds 判断坐标是否仍在游戏场（含外扩边距）内
func InBounds(x, y float64) bool {
	return x >= -BoundsMargin && x <= PlayfieldWidth+BoundsMargin &&
		y >= -BoundsMargin && y <= PlayfieldHeight+BoundsMargin
}
