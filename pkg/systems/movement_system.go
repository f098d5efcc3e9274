package systems

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
)

// MovementSystem 积分自由运动的实体（子弹、无人机、掉落物）
// 编队成员、Boss 和玩家由各自的系统定位，不在这里处理。
// 离开活动区域的实体被销毁，计入波次的敌机离场时调用 OnEnemyExited。
type MovementSystem struct {
	em *ecs.EntityManager

	OnEnemyExited func(id ecs.EntityID, enemy *components.EnemyComponent)
}

func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{em: em}
}

func (s *MovementSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em) {
		if ecs.HasComponent[*components.FormationMemberComponent](s.em, id) ||
			ecs.HasComponent[*components.BossComponent](s.em, id) ||
			ecs.HasComponent[*components.PlayerComponent](s.em, id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX * dt
		pos.Y += vel.VY * dt

		if config.InBounds(pos.X, pos.Y) {
			continue
		}
		s.em.DestroyEntity(id)
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id); ok && s.OnEnemyExited != nil {
			s.OnEnemyExited(id, enemy)
		}
	}
}
