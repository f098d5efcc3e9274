package entities

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

// NewBoss 创建处于入场状态的 Boss
// Boss 从游戏场上方出现，由 BossSystem 驱动下降，入场期间不响应伤害
func NewBoss(em *ecs.EntityManager, bossType types.BossType, def *config.BossDefinition, x float64) ecs.EntityID {
	id := em.CreateEntity()
	first := def.Phase(1)

	em.AddComponent(id, &components.PositionComponent{X: x, Y: config.BossEnterStartY})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: def.MaxHealth,
		MaxHealth:     def.MaxHealth,
	})
	em.AddComponent(id, &components.BossComponent{
		Type:          bossType,
		Config:        def,
		Phase:         types.BossEntering,
		MoveDirection: 1,
		MoveSpeed:     first.MoveSpeed,
		ShootInterval: first.ShootIntervalMs,
		ShootTimerMs:  first.ShootIntervalMs,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Kind:   components.KindBoss,
		Radius: config.BossRadius,
	})

	return id
}
