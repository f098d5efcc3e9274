package entities

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

// NewCollectible 创建掉落物
// 以固定速度下落并带有水平漂移 driftX，5 秒未拾取自动消失
func NewCollectible(em *ecs.EntityManager, collectibleType types.CollectibleType, value int, x, y, driftX float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: driftX, VY: config.CollectibleFallSpeed})
	em.AddComponent(id, &components.CollectibleComponent{
		Type:  collectibleType,
		Value: value,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: config.CollectibleLifetimeMs,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Kind:   components.KindCollectible,
		Radius: config.CollectibleRadius,
	})

	return id
}
