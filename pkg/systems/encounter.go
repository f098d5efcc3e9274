package systems

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

// Encounter 一局游戏的全部系统及其相互连接
type Encounter struct {
	World *World

	Formations  *FormationSystem
	Bosses      *BossSystem
	Waves       *WaveDirector
	Player      *PlayerSystem
	Score       *ScoreSystem
	Streak      *StreakSystem
	Bonus       *BonusSystem
	Combat      *CombatSystem
	Movement    *MovementSystem
	EnemyFire   *EnemyFireSystem
	Collectible *CollectibleSystem
	Lifetime    *LifetimeSystem
}

// NewEncounter 创建并连接全部系统
// 编队离场和自由运动离场都计入波次；Boss 击败时发放分数并通知波次导演。
func NewEncounter(w *World) *Encounter {
	e := &Encounter{World: w}

	e.Formations = NewFormationSystem(w)
	e.Bosses = NewBossSystem(w)
	e.Waves = NewWaveDirector(w, e.Formations, e.Bosses)
	e.Score = NewScoreSystem(w)
	e.Streak = NewStreakSystem(w)
	e.Bonus = NewBonusSystem(w, e.Score)
	e.Player = NewPlayerSystem(w, e.Bonus)
	e.Combat = NewCombatSystem(w, e.Waves, e.Bosses, e.Player, e.Score, e.Streak, e.Bonus)
	e.Movement = NewMovementSystem(w.EM)
	e.EnemyFire = NewEnemyFireSystem(w)
	e.Collectible = NewCollectibleSystem(w.EM)
	e.Lifetime = NewLifetimeSystem(w.EM)

	exited := func(_ ecs.EntityID, enemy *components.EnemyComponent) {
		if enemy != nil && enemy.CountsTowardWave {
			e.Waves.OnEnemyExited()
		}
	}
	e.Formations.OnMemberExited = exited
	e.Movement.OnEnemyExited = exited
	e.Bosses.OnDefeated = func(_ types.BossType, scoreValue int) {
		e.Score.AddBonus(scoreValue, BonusBoss)
		e.Waves.OnBossKilled()
	}

	return e
}

// Simulate 推进移动、射击、掉落物和生命周期（碰撞结算之前的部分）
func (e *Encounter) Simulate(deltaMs float64) {
	e.Player.Update(deltaMs)
	e.Formations.Update(deltaMs)
	e.Bosses.Update(deltaMs)
	e.Movement.Update(deltaMs)
	e.EnemyFire.Update(deltaMs)
	e.Collectible.Update(e.Player.Player())
	e.Lifetime.Update(deltaMs)
}

// Settle 结算本帧重叠，然后检查擦弹并推进连击和连杀衰减
func (e *Encounter) Settle(deltaMs float64, overlaps []Overlap) {
	e.Combat.Resolve(overlaps)
	e.Bonus.CheckGraze(e.Player.Player())
	e.Score.Update(deltaMs)
	e.Streak.Update(deltaMs)
}

// ClearHostileBullets 销毁全部敌方和 Boss 子弹
func (e *Encounter) ClearHostileBullets() int {
	em := e.World.EM
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		if bullet.Owner != components.OwnerPlayer {
			em.DestroyEntity(id)
			n++
		}
	}
	return n
}
