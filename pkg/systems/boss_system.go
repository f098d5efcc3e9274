package systems

import (
	"log"
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/types"
)

// BossSystem Boss 阶段引擎
//
// 状态：Entering → Phase1 → Phase2 → Phase3，任意阶段生命耗尽进入 Dying。
// 阶段只前进不后退，由生命比例首次低于阈值触发。
type BossSystem struct {
	world *World

	// OnDefeated 死亡演出结束、Boss 被移除前调用一次
	OnDefeated func(bossType types.BossType, scoreValue int)
}

// NewBossSystem 创建 Boss 阶段引擎
func NewBossSystem(w *World) *BossSystem {
	return &BossSystem{world: w}
}

// Spawn 在水平位置 x 生成 Boss，未知类型回退到 mothership
func (s *BossSystem) Spawn(bossType types.BossType, x float64) ecs.EntityID {
	resolved, def := s.world.Data.Bosses.Get(bossType)
	id := entities.NewBoss(s.world.EM, resolved, def, x)

	s.world.Audio.Play(game.SoundBossWarning)
	log.Printf("[BossSystem] Spawned boss %s (entity %d, health %d)", resolved, id, def.MaxHealth)
	return id
}

// Active 返回当前 Boss（同一时间最多一个）
func (s *BossSystem) Active() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.BossComponent](s.world.EM)
	if len(ids) == 0 {
		return ecs.InvalidEntity, false
	}
	return ids[0], true
}

// Update 推进入场、移动和开火
func (s *BossSystem) Update(deltaMs float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.HealthComponent](s.world.EM) {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.world.EM, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)

		switch boss.Phase {
		case types.BossEntering:
			s.updateEntering(id, boss, pos, deltaMs)
		case types.BossDying:
			// 死亡演出由调度器驱动
		default:
			s.move(boss, pos, deltaMs)
			s.updateFiring(id, boss, pos, deltaMs)
		}
	}
}

func (s *BossSystem) updateEntering(id ecs.EntityID, boss *components.BossComponent, pos *components.PositionComponent, deltaMs float64) {
	boss.EnterElapsedMs += deltaMs
	progress := math.Min(boss.EnterElapsedMs/config.BossEnterDurationMs, 1)
	pos.Y = config.BossEnterStartY + (config.BossEnterTargetY-config.BossEnterStartY)*progress

	if progress >= 1 {
		pos.Y = config.BossEnterTargetY
		boss.Phase = types.BossPhase1
		boss.ShootTimerMs = boss.ShootInterval
		log.Printf("[BossSystem] Boss %s arrived, entering phase 1", boss.Type)
		s.world.Emit(game.EventBossPhaseChanged, game.BossPhaseChangedPayload{Boss: boss.Type, Phase: 1})
	}
}

func (s *BossSystem) move(boss *components.BossComponent, pos *components.PositionComponent, deltaMs float64) {
	pos.X += boss.MoveDirection * boss.MoveSpeed * deltaMs / 1000
	if pos.X < config.BossMarginX {
		pos.X = config.BossMarginX
		boss.MoveDirection = 1
	} else if pos.X > config.PlayfieldWidth-config.BossMarginX {
		pos.X = config.PlayfieldWidth - config.BossMarginX
		boss.MoveDirection = -1
	}
}

func (s *BossSystem) updateFiring(id ecs.EntityID, boss *components.BossComponent, pos *components.PositionComponent, deltaMs float64) {
	boss.ShootTimerMs -= deltaMs
	if boss.ShootTimerMs > 0 {
		return
	}
	boss.ShootTimerMs = boss.ShootInterval

	if s.LiveBullets(id) > config.BossBulletCeiling {
		return
	}
	for _, attack := range boss.PhaseConfig().Attacks {
		s.executeAttack(id, pos, attack)
	}
}

// ApplyDamage 对 Boss 造成伤害
// 入场和死亡演出期间不受伤害。返回是否实际造成了伤害。
func (s *BossSystem) ApplyDamage(id ecs.EntityID, amount int) bool {
	if !s.world.EM.IsAlive(id) {
		return false
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](s.world.EM, id)
	if !ok || boss.Phase == types.BossEntering || boss.Phase == types.BossDying {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.world.EM, id)
	if !ok {
		return false
	}

	health.CurrentHealth = max(health.CurrentHealth-amount, 0)
	if health.IsDepleted() {
		s.startDeath(id, boss)
		return true
	}
	s.checkPhase(id, boss, health)
	return true
}

// checkPhase 按阈值从高到低检查，直接进入已越过的最高阶段
func (s *BossSystem) checkPhase(id ecs.EntityID, boss *components.BossComponent, health *components.HealthComponent) {
	current := boss.Phase.Number()
	fraction := health.Fraction()

	target := current
	for n := current + 1; n <= config.BossPhaseCount; n++ {
		if fraction < boss.Config.Phase(n).Threshold {
			target = n
		}
	}
	if target == current {
		return
	}

	s.enterPhase(id, boss, target)
}

func (s *BossSystem) enterPhase(id ecs.EntityID, boss *components.BossComponent, n int) {
	boss.Phase = types.PhaseFromNumber(n)
	phase := boss.PhaseConfig()
	boss.MoveSpeed = phase.MoveSpeed
	boss.ShootInterval = phase.ShootIntervalMs
	boss.ShootTimerMs = phase.ShootIntervalMs

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, id); ok {
		s.fireRing(id, pos.X, pos.Y, config.BossTransitionBurst, config.BossTransitionBurstSpeed)
		s.world.Effects.Explosion(pos.X, pos.Y, false)
	}
	s.world.Effects.Shake(0.01)

	log.Printf("[BossSystem] Boss %s entering phase %d", boss.Type, n)
	s.world.Emit(game.EventBossPhaseChanged, game.BossPhaseChangedPayload{Boss: boss.Type, Phase: n})
}

// startDeath 进入死亡演出：分批爆炸，随后发出击败信号并清理
// 每一步都检查 Boss 是否仍然存在，场景提前清理时安全跳过
func (s *BossSystem) startDeath(id ecs.EntityID, boss *components.BossComponent) {
	boss.Phase = types.BossDying
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.world.EM, id); ok {
		vel.VX, vel.VY = 0, 0
	}
	log.Printf("[BossSystem] Boss %s destroyed, starting death sequence", boss.Type)

	alive := s.world.aliveCheck(id)
	for i := 0; i < config.BossExplosionCount; i++ {
		s.world.Scheduler.Schedule(float64(i)*config.BossExplosionIntervalMs, alive, func() {
			pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)
			if !ok {
				return
			}
			dx := (s.world.Rand.Float64()*2 - 1) * config.BossRadius
			dy := (s.world.Rand.Float64()*2 - 1) * config.BossRadius / 2
			s.world.Effects.Explosion(pos.X+dx, pos.Y+dy, true)
			s.world.Audio.Play(game.SoundExplosion)
		})
	}

	s.world.Scheduler.Schedule(config.BossDefeatDelayMs, alive, func() {
		s.finishDeath(id)
	})
}

func (s *BossSystem) finishDeath(id ecs.EntityID) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.world.EM, id)
	if !ok || boss.Defeated {
		return
	}
	boss.Defeated = true

	score := 0
	if boss.Config != nil {
		score = boss.Config.ScoreValue
	}
	log.Printf("[BossSystem] Boss %s defeated (+%d)", boss.Type, score)
	s.world.Effects.Shake(0.02)
	s.world.Emit(game.EventBossDefeated, game.BossDefeatedPayload{Boss: boss.Type, Score: score})

	if s.OnDefeated != nil {
		s.OnDefeated(boss.Type, score)
	}
	s.ClearBullets(id)
	s.world.EM.DestroyEntity(id)
}

// LiveBullets 返回该 Boss 拥有的存活子弹数
func (s *BossSystem) LiveBullets(id ecs.EntityID) int {
	n := 0
	for _, b := range ecs.GetEntitiesWith1[*components.BulletComponent](s.world.EM) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.world.EM, b)
		if bullet.Owner == components.OwnerBoss && bullet.Source == id {
			n++
		}
	}
	return n
}

// ClearBullets 销毁该 Boss 拥有的全部子弹
func (s *BossSystem) ClearBullets(id ecs.EntityID) {
	for _, b := range ecs.GetEntitiesWith1[*components.BulletComponent](s.world.EM) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.world.EM, b)
		if bullet.Owner == components.OwnerBoss && bullet.Source == id {
			s.world.EM.DestroyEntity(b)
		}
	}
}
