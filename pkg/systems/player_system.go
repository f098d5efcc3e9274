package systems

import (
	"log"
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/game"
)

// diagonalFactor 斜向移动时每个轴的速度系数
const diagonalFactor = 0.707

// PlayerSystem 玩家移动、自动射击、受伤与复活
type PlayerSystem struct {
	world *World
	bonus *BonusSystem

	player ecs.EntityID

	// OnGameOver 最后一条命耗尽时立即调用
	OnGameOver func()
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(w *World, bonus *BonusSystem) *PlayerSystem {
	return &PlayerSystem{world: w, bonus: bonus}
}

// Spawn 创建玩家飞船
func (s *PlayerSystem) Spawn() ecs.EntityID {
	s.player = entities.NewPlayer(s.world.EM)
	return s.player
}

// Player 玩家实体
func (s *PlayerSystem) Player() ecs.EntityID { return s.player }

func (s *PlayerSystem) state() (*components.PlayerComponent, bool) {
	if !s.world.EM.IsAlive(s.player) {
		return nil, false
	}
	return ecs.GetComponent[*components.PlayerComponent](s.world.EM, s.player)
}

// SetInput 设置本帧的输入方向，各轴取值 -1..1
func (s *PlayerSystem) SetInput(x, y float64) {
	if p, ok := s.state(); ok {
		p.InputX = math.Max(-1, math.Min(1, x))
		p.InputY = math.Max(-1, math.Min(1, y))
	}
}

// Update 移动并自动射击
func (s *PlayerSystem) Update(deltaMs float64) {
	p, ok := s.state()
	if !ok || p.IsDying {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, s.player)
	if !ok {
		return
	}

	dx, dy := p.InputX, p.InputY
	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}
	dt := deltaMs / 1000
	pos.X = clamp(pos.X+dx*p.Speed*dt, config.PlayerRadius, config.PlayfieldWidth-config.PlayerRadius)
	pos.Y = clamp(pos.Y+dy*p.Speed*dt, config.PlayerRadius, config.PlayfieldHeight-config.PlayerRadius)

	p.FireTimerMs -= deltaMs
	if p.FireTimerMs <= 0 {
		p.FireTimerMs = p.FireRateMs
		s.fire(p, pos)
	}
}

// fire 按散射等级发射一轮子弹
func (s *PlayerSystem) fire(p *components.PlayerComponent, pos *components.PositionComponent) {
	x, y := pos.X, pos.Y-20
	switch {
	case p.BulletSpread >= 3:
		s.shoot(x, y, 0)
		s.shoot(x-15, y, -50)
		s.shoot(x+15, y, 50)
	case p.BulletSpread == 2:
		s.shoot(x-10, y, 0)
		s.shoot(x+10, y, 0)
	default:
		s.shoot(x, y, 0)
	}
	s.world.Audio.Play(game.SoundShoot)
}

func (s *PlayerSystem) shoot(x, y, vx float64) {
	entities.NewPlayerBullet(s.world.EM, x, y, vx)
	if s.bonus != nil {
		s.bonus.RecordShotFired()
	}
}

// ApplyDamage 对玩家造成伤害，无敌或死亡演出中忽略
// 返回是否实际造成了伤害
func (s *PlayerSystem) ApplyDamage(amount int) bool {
	p, ok := s.state()
	if !ok || p.Invincible || p.IsDying {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.world.EM, s.player)
	if !ok {
		return false
	}

	health.CurrentHealth = max(health.CurrentHealth-amount, 0)
	if s.bonus != nil {
		s.bonus.RecordDamageTaken()
	}
	s.world.Effects.Shake(0.01)
	s.world.Audio.Play(game.SoundHit)
	s.world.Emit(game.EventPlayerHit, game.PlayerHitPayload{Damage: amount, Health: health.CurrentHealth})

	if health.IsDepleted() {
		s.die(p, health)
	}
	return true
}

func (s *PlayerSystem) die(p *components.PlayerComponent, health *components.HealthComponent) {
	p.Lives--
	p.IsDying = true
	p.InputX, p.InputY = 0, 0

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, s.player); ok {
		s.world.Effects.Explosion(pos.X, pos.Y, true)
	}
	s.world.Audio.Play(game.SoundExplosion)
	s.world.Emit(game.EventPlayerDied, game.PlayerDiedPayload{LivesLeft: p.Lives})
	log.Printf("[PlayerSystem] Player destroyed, %d lives left", p.Lives)

	if p.Lives <= 0 {
		if s.OnGameOver != nil {
			s.OnGameOver()
		}
		return
	}

	id := s.player
	s.world.Scheduler.Schedule(config.PlayerRespawnDelayMs, s.world.aliveCheck(id), func() {
		s.respawn(p, health)
	})
}

func (s *PlayerSystem) respawn(p *components.PlayerComponent, health *components.HealthComponent) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, s.player); ok {
		pos.X, pos.Y = config.CenterX, config.PlayerSpawnY
	}
	health.CurrentHealth = health.MaxHealth
	p.IsDying = false
	p.Invincible = true
	p.FireTimerMs = 0

	s.world.Scheduler.Schedule(config.PlayerInvincibleMs, s.world.aliveCheck(s.player), func() {
		p.Invincible = false
	})
}

// UpgradeWeapon 武器升一级
func (s *PlayerSystem) UpgradeWeapon() {
	p, ok := s.state()
	if !ok {
		return
	}
	p.WeaponLevel++
	switch {
	case p.WeaponLevel >= 4:
		p.BulletSpread = 3
		p.FireRateMs = 80
	case p.WeaponLevel == 3:
		p.BulletSpread = 3
		p.FireRateMs = 100
	case p.WeaponLevel == 2:
		p.BulletSpread = 2
		p.FireRateMs = 150
	}
}

// UpgradeSpeed 提高移动速度
func (s *PlayerSystem) UpgradeSpeed() {
	if p, ok := s.state(); ok {
		p.Speed += config.SpeedUpgradeAmount
	}
}

// Heal 回满生命
func (s *PlayerSystem) Heal() {
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.world.EM, s.player); ok {
		health.CurrentHealth = health.MaxHealth
	}
}

// AddLife 增加一条命
func (s *PlayerSystem) AddLife() {
	if p, ok := s.state(); ok {
		p.Lives++
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
