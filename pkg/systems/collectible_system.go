package systems

import (
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
)

// CollectibleSystem 掉落物磁吸
// 进入磁吸范围后速度指向玩家，越近越快；下落与漂移由 MovementSystem 积分。
type CollectibleSystem struct {
	em *ecs.EntityManager
}

func NewCollectibleSystem(em *ecs.EntityManager) *CollectibleSystem {
	return &CollectibleSystem{em: em}
}

func (s *CollectibleSystem) Update(playerID ecs.EntityID) {
	if !s.em.IsAlive(playerID) {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	if !ok || player.IsDying {
		return
	}
	ppos, ok := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith3[*components.CollectibleComponent, *components.PositionComponent, *components.VelocityComponent](s.em) {
		c, _ := ecs.GetComponent[*components.CollectibleComponent](s.em, id)
		if c.Collected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		dx, dy := ppos.X-pos.X, ppos.Y-pos.Y
		d := math.Hypot(dx, dy)
		if d >= config.MagnetRange || d == 0 {
			continue
		}
		pull := config.MagnetStrength * (1 - d/config.MagnetRange)
		vel.VX = dx / d * pull
		vel.VY = dy / d * pull
		c.Attracted = true
	}
}
