package entities

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
)

// NewPlayerBullet 创建玩家子弹，向上飞行
func NewPlayerBullet(em *ecs.EntityManager, x, y, vx float64) ecs.EntityID {
	return newBullet(em, components.OwnerPlayer, components.KindPlayerBullet, ecs.InvalidEntity, x, y, vx, -config.PlayerBulletSpeed)
}

// NewEnemyBullet 创建普通敌机子弹
func NewEnemyBullet(em *ecs.EntityManager, source ecs.EntityID, x, y, vx, vy float64) ecs.EntityID {
	return newBullet(em, components.OwnerEnemy, components.KindEnemyBullet, source, x, y, vx, vy)
}

// NewBossBullet 创建 Boss 子弹，按 source 归入该 Boss 的子弹集合
func NewBossBullet(em *ecs.EntityManager, source ecs.EntityID, x, y, vx, vy float64) ecs.EntityID {
	return newBullet(em, components.OwnerBoss, components.KindBossBullet, source, x, y, vx, vy)
}

func newBullet(em *ecs.EntityManager, owner components.BulletOwner, kind components.CollisionKind, source ecs.EntityID, x, y, vx, vy float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.BulletComponent{Owner: owner, Source: source})
	em.AddComponent(id, &components.CollisionComponent{Kind: kind, Radius: config.BulletRadius})
	return id
}
