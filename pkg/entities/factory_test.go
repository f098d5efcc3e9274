package entities

import (
	"testing"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

var fighterStats = config.EnemyTypeStats{Health: 25, Speed: 100, Points: 100, DropChance: 0.5, ShootIntervalMs: 2000}

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()

	t.Run("射击型敌机", func(t *testing.T) {
		id := NewEnemy(em, types.EnemyFighter, fighterStats, 100, 50, true)

		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok || health.CurrentHealth != 25 || health.MaxHealth != 25 {
			t.Errorf("unexpected health: %+v", health)
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Type != types.EnemyFighter || enemy.Points != 100 || !enemy.CountsTowardWave {
			t.Errorf("unexpected enemy component: %+v", enemy)
		}
		shooter, ok := ecs.GetComponent[*components.ShooterComponent](em, id)
		if !ok || shooter.IntervalMs != 2000 {
			t.Errorf("fighter should have a 2000ms shooter, got %+v", shooter)
		}
	})

	t.Run("不射击的敌机没有射击组件", func(t *testing.T) {
		stats := fighterStats
		stats.ShootIntervalMs = 0
		id := NewEnemy(em, types.EnemyScout, stats, 0, 0, true)
		if ecs.HasComponent[*components.ShooterComponent](em, id) {
			t.Error("scout should not shoot")
		}
	})

	t.Run("大型敌机使用更大的碰撞半径", func(t *testing.T) {
		id := NewEnemy(em, types.EnemyBomber, fighterStats, 0, 0, true)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if col.Kind != components.KindEnemy || col.Radius != config.LargeEnemyRadius {
			t.Errorf("unexpected collider: %+v", col)
		}
	})

	t.Run("无人机独立下行且不计入波次", func(t *testing.T) {
		drone := NewDrone(em, config.EnemyTypeStats{Health: 10, Speed: 200, Points: 50}, 300, 100)
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, drone)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, drone)
		if enemy.CountsTowardWave || enemy.Type != types.EnemyDrone {
			t.Errorf("drone should not count toward wave: %+v", enemy)
		}
		if vel.VY != 200 {
			t.Errorf("drone should move down at 200, got %v", vel.VY)
		}
	})
}

func TestNewBoss(t *testing.T) {
	em := ecs.NewEntityManager()
	def := &config.BossDefinition{
		MaxHealth:  1000,
		ScoreValue: 5000,
		Phases: []config.BossPhaseConfig{
			{Threshold: 1.0, MoveSpeed: 80, ShootIntervalMs: 1500},
			{Threshold: 0.66, MoveSpeed: 100, ShootIntervalMs: 1200},
			{Threshold: 0.33, MoveSpeed: 120, ShootIntervalMs: 800},
		},
	}

	id := NewBoss(em, types.BossMothership, def, config.CenterX)
	boss, ok := ecs.GetComponent[*components.BossComponent](em, id)
	if !ok {
		t.Fatal("boss component missing")
	}
	if boss.Phase != types.BossEntering {
		t.Errorf("boss should start entering, got %s", boss.Phase)
	}
	if boss.MoveSpeed != 80 || boss.ShootInterval != 1500 {
		t.Errorf("boss should adopt phase 1 settings, got speed %v interval %v", boss.MoveSpeed, boss.ShootInterval)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != config.BossEnterStartY {
		t.Errorf("boss should spawn at y=%v, got %v", config.BossEnterStartY, pos.Y)
	}
}

func TestBulletsAndCollectibles(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name  string
		id    ecs.EntityID
		kind  components.CollisionKind
		owner components.BulletOwner
	}{
		{"玩家子弹", NewPlayerBullet(em, 10, 10, 0), components.KindPlayerBullet, components.OwnerPlayer},
		{"敌机子弹", NewEnemyBullet(em, 7, 10, 10, 0, 400), components.KindEnemyBullet, components.OwnerEnemy},
		{"Boss 子弹", NewBossBullet(em, 7, 10, 10, 0, 250), components.KindBossBullet, components.OwnerBoss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, _ := ecs.GetComponent[*components.CollisionComponent](em, tt.id)
			bullet, _ := ecs.GetComponent[*components.BulletComponent](em, tt.id)
			if col.Kind != tt.kind || bullet.Owner != tt.owner {
				t.Errorf("expected %s/%d, got %s/%d", tt.kind, tt.owner, col.Kind, bullet.Owner)
			}
		})
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, tests[0].id)
	if vel.VY != -config.PlayerBulletSpeed {
		t.Errorf("player bullet should fly up at %v, got %v", config.PlayerBulletSpeed, vel.VY)
	}

	coin := NewCollectible(em, types.CollectibleCoin, 100, 50, 50, -10)
	life, ok := ecs.GetComponent[*components.LifetimeComponent](em, coin)
	if !ok || life.MaxLifetime != config.CollectibleLifetimeMs {
		t.Errorf("collectible should expire after %vms, got %+v", config.CollectibleLifetimeMs, life)
	}
	cvel, _ := ecs.GetComponent[*components.VelocityComponent](em, coin)
	if cvel.VX != -10 || cvel.VY != config.CollectibleFallSpeed {
		t.Errorf("unexpected collectible velocity: %+v", cvel)
	}
}

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewPlayer(em)
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if player.Lives != 3 || player.FireRateMs != 200 || player.WeaponLevel != 1 {
		t.Errorf("unexpected player: %+v", player)
	}
	if health.CurrentHealth != 100 {
		t.Errorf("expected full health, got %d", health.CurrentHealth)
	}
}
