package systems

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/game"
)

// EnemyFireSystem 定时射击的敌机，进入画面后才开火
type EnemyFireSystem struct {
	world *World
}

func NewEnemyFireSystem(w *World) *EnemyFireSystem {
	return &EnemyFireSystem{world: w}
}

func (s *EnemyFireSystem) Update(deltaMs float64) {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith2[*components.ShooterComponent, *components.PositionComponent](em) {
		shooter, _ := ecs.GetComponent[*components.ShooterComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		shooter.TimerMs -= deltaMs
		if shooter.TimerMs > 0 {
			continue
		}
		shooter.TimerMs = shooter.IntervalMs
		if pos.Y < 0 {
			continue
		}
		entities.NewEnemyBullet(em, id, pos.X, pos.Y+config.EnemyBulletOffsetY, 0, config.EnemyBulletSpeed)
		s.world.Audio.Play(game.SoundEnemyShoot)
	}
}
