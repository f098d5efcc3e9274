package systems

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/game"
)

// CombatSystem 战斗结算
// 每个处理函数先检查双方存活，命中后立即销毁子弹，保证同一颗子弹只结算一次。
type CombatSystem struct {
	world  *World
	router *CollisionRouter
	waves  *WaveDirector
	bosses *BossSystem
	player *PlayerSystem
	score  *ScoreSystem
	streak *StreakSystem
	bonus  *BonusSystem
}

// NewCombatSystem 创建战斗系统并注册全部分类对
func NewCombatSystem(w *World, waves *WaveDirector, bosses *BossSystem, player *PlayerSystem,
	score *ScoreSystem, streak *StreakSystem, bonus *BonusSystem) *CombatSystem {
	s := &CombatSystem{
		world:  w,
		router: NewCollisionRouter(w.EM),
		waves:  waves,
		bosses: bosses,
		player: player,
		score:  score,
		streak: streak,
		bonus:  bonus,
	}

	s.router.Register(components.KindPlayerBullet, components.KindEnemy, s.playerBulletHitsEnemy)
	s.router.Register(components.KindPlayerBullet, components.KindBoss, s.playerBulletHitsBoss)
	s.router.Register(components.KindEnemyBullet, components.KindPlayer, s.enemyBulletHitsPlayer)
	s.router.Register(components.KindBossBullet, components.KindPlayer, s.bossBulletHitsPlayer)
	s.router.Register(components.KindEnemy, components.KindPlayer, s.enemyRamsPlayer)
	s.router.Register(components.KindCollectible, components.KindPlayer, s.collect)
	return s
}

// Router 返回分类路由器
func (s *CombatSystem) Router() *CollisionRouter { return s.router }

// Resolve 分派本帧的全部重叠
func (s *CombatSystem) Resolve(overlaps []Overlap) int {
	return s.router.DispatchAll(overlaps)
}

func (s *CombatSystem) playerBulletHitsEnemy(bullet, enemy ecs.EntityID) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.world.EM, enemy)
	if !ok {
		return
	}
	s.world.EM.DestroyEntity(bullet)
	s.bonus.RecordShotHit()

	health.CurrentHealth = max(health.CurrentHealth-config.PlayerBulletDamage, 0)
	if health.IsDepleted() {
		s.KillEnemy(enemy)
	}
}

// playerBulletHitsBoss 入场或死亡演出中的 Boss 仍会吃掉子弹，但不计命中
func (s *CombatSystem) playerBulletHitsBoss(bullet, boss ecs.EntityID) {
	s.world.EM.DestroyEntity(bullet)
	if s.bosses.ApplyDamage(boss, config.PlayerBulletDamage) {
		s.bonus.RecordShotHit()
	}
}

// enemyBulletHitsPlayer 无敌或死亡中的玩家不阻挡子弹
func (s *CombatSystem) enemyBulletHitsPlayer(bullet, player ecs.EntityID) {
	s.bulletHitsPlayer(bullet, player, config.EnemyBulletDamage)
}

func (s *CombatSystem) bossBulletHitsPlayer(bullet, player ecs.EntityID) {
	s.bulletHitsPlayer(bullet, player, config.BossBulletDamage)
}

func (s *CombatSystem) bulletHitsPlayer(bullet, player ecs.EntityID, damage int) {
	if !s.playerVulnerable(player) {
		return
	}
	s.world.EM.DestroyEntity(bullet)
	s.player.ApplyDamage(damage)
}

func (s *CombatSystem) playerVulnerable(player ecs.EntityID) bool {
	p, ok := ecs.GetComponent[*components.PlayerComponent](s.world.EM, player)
	return ok && !p.Invincible && !p.IsDying
}

// enemyRamsPlayer 撞击：敌机直接移除，不掉落、不计分，计为离场
func (s *CombatSystem) enemyRamsPlayer(enemy, player ecs.EntityID) {
	if !s.playerVulnerable(player) {
		return
	}
	e, _ := ecs.GetComponent[*components.EnemyComponent](s.world.EM, enemy)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, enemy); ok {
		s.world.Effects.Explosion(pos.X, pos.Y, false)
	}
	s.world.EM.DestroyEntity(enemy)
	if e != nil && e.CountsTowardWave {
		s.waves.OnEnemyExited()
	}
	s.player.ApplyDamage(config.BodyCollisionDamage)
}

func (s *CombatSystem) collect(collectible, _ ecs.EntityID) {
	c, ok := ecs.GetComponent[*components.CollectibleComponent](s.world.EM, collectible)
	if !ok || c.Collected {
		return
	}
	c.Collected = true

	s.score.AddCollectible(c.Value, c.Type)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, collectible); ok {
		s.world.Effects.Sparkle(pos.X, pos.Y)
	}
	s.world.Audio.Play(game.SoundCollect)
	s.world.EM.DestroyEntity(collectible)
}

// KillEnemy 击杀敌机：连杀、计分、波次计数、爆炸和掉落
func (s *CombatSystem) KillEnemy(id ecs.EntityID) {
	if !s.world.EM.IsAlive(id) {
		return
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.world.EM, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)
	s.world.EM.DestroyEntity(id)

	multiplier, _ := s.streak.RegisterKill()
	s.score.AddKillScore(enemy.Points, multiplier)
	if enemy.CountsTowardWave {
		s.waves.OnEnemyKilled()
	}

	if pos == nil {
		return
	}
	s.world.Effects.Explosion(pos.X, pos.Y, enemy.Type.IsLarge())
	s.world.Audio.Play(game.SoundExplosion)
	s.rollDrop(enemy, pos.X, pos.Y)
}

func (s *CombatSystem) rollDrop(enemy *components.EnemyComponent, x, y float64) {
	rng := s.world.Rand
	if rng.Float64() >= enemy.DropChance {
		return
	}
	table := s.world.Data.Collectibles
	t := table.RollType(rng.Float64())
	driftX := (rng.Float64()*2 - 1) * config.CollectibleDriftX
	entities.NewCollectible(s.world.EM, t, table.Value(t), x, y, driftX)
}
