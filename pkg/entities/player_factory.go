package entities

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
)

// NewPlayer 创建玩家飞船，位于底部中央
func NewPlayer(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: config.CenterX, Y: config.PlayerSpawnY})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: config.PlayerMaxHealth,
		MaxHealth:     config.PlayerMaxHealth,
	})
	em.AddComponent(id, &components.PlayerComponent{
		Lives:        config.PlayerLives,
		Speed:        config.PlayerSpeed,
		WeaponLevel:  1,
		BulletSpread: 1,
		FireRateMs:   config.PlayerFireRateMs,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Kind:   components.KindPlayer,
		Radius: config.PlayerRadius,
	})

	return id
}
