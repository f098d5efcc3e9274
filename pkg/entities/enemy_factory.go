package entities

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

// NewEnemy 创建敌机实体
// 初始速度为 0，编队成员的位置由 FormationSystem 每帧计算。
// countsTowardWave 为 false 的敌机（无人机）不影响波次剩余数。
func NewEnemy(em *ecs.EntityManager, enemyType types.EnemyType, stats config.EnemyTypeStats, x, y float64, countsTowardWave bool) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Type:             enemyType,
		Points:           stats.Points,
		DropChance:       stats.DropChance,
		CountsTowardWave: countsTowardWave,
	})

	radius := config.EnemyRadius
	if enemyType.IsLarge() {
		radius = config.LargeEnemyRadius
	}
	em.AddComponent(id, &components.CollisionComponent{
		Kind:   components.KindEnemy,
		Radius: radius,
	})

	if stats.Shoots() {
		em.AddComponent(id, &components.ShooterComponent{
			IntervalMs: stats.ShootIntervalMs,
			TimerMs:    stats.ShootIntervalMs,
		})
	}

	return id
}

// NewDrone 创建 Boss 释放的无人机
// 不属于任何编队，以自身速度独立下行，不计入波次
func NewDrone(em *ecs.EntityManager, stats config.EnemyTypeStats, x, y float64) ecs.EntityID {
	id := NewEnemy(em, types.EnemyDrone, stats, x, y, false)
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
		vel.VY = stats.Speed
	}
	return id
}
