package components

// CollisionKind 碰撞分类
// 宿主的重叠检测按分类有序对上报重叠，战斗系统按有序对注册处理函数
type CollisionKind int

const (
	KindNone CollisionKind = iota
	KindPlayer
	KindPlayerBullet
	KindEnemy
	KindEnemyBullet
	KindBoss
	KindBossBullet
	KindCollectible
)

func (k CollisionKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemy:
		return "enemy"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindBoss:
		return "boss"
	case KindBossBullet:
		return "boss_bullet"
	case KindCollectible:
		return "collectible"
	}
	return "none"
}

// CollisionComponent 定义实体的碰撞圆（形状精度不是目标，统一使用圆）
type CollisionComponent struct {
	Kind   CollisionKind
	Radius float64 // 碰撞半径（像素）
}
