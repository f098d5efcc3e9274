package systems

import (
	"testing"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

func TestWaveBossCadence(t *testing.T) {
	r := newTestRig(t)

	for n := 1; n <= 30; n++ {
		plan := r.Waves.PlanWave(n)
		if plan.Boss != (n%5 == 0) {
			t.Errorf("Wave %d: expected boss=%v, got %v", n, n%5 == 0, plan.Boss)
		}
		if plan.Boss && len(plan.Formations) != 0 {
			t.Errorf("Wave %d: boss wave should have no formations", n)
		}
	}

	tests := []struct {
		wave int
		boss types.BossType
	}{
		{5, types.BossMothership},
		{10, types.BossDreadnought},
		{15, types.BossHiveQueen},
		{20, types.BossStarSerpent},
		{25, types.BossVoidTitan},
		{30, types.BossMothership},
		{55, types.BossMothership},
	}
	for _, tt := range tests {
		if got := r.Waves.BossTypeForWave(tt.wave); got != tt.boss {
			t.Errorf("Wave %d: expected %s, got %s", tt.wave, tt.boss, got)
		}
	}
}

func TestWavePlanCurve(t *testing.T) {
	r := newTestRig(t)

	tests := []struct {
		wave         int
		formations   int
		perFormation int
	}{
		{1, 1, 5},
		{3, 2, 9},
		{9, 4, 20},
		{12, 5, 20},
	}
	for _, tt := range tests {
		plan := r.Waves.PlanWave(tt.wave)
		if len(plan.Formations) != tt.formations {
			t.Errorf("Wave %d: expected %d formations, got %d", tt.wave, tt.formations, len(plan.Formations))
		}
		for i, f := range plan.Formations {
			if f.Count != tt.perFormation {
				t.Errorf("Wave %d: expected %d enemies per formation, got %d", tt.wave, tt.perFormation, f.Count)
			}
			if f.DelayMs != float64(i)*2000 {
				t.Errorf("Wave %d formation %d: expected delay %d, got %.0f", tt.wave, i, i*2000, f.DelayMs)
			}
			if f.Y != config.FormationSpawnY-config.FormationSpawnStepY*float64(i) {
				t.Errorf("Wave %d formation %d: unexpected spawn y %.0f", tt.wave, i, f.Y)
			}
			if f.X < config.CenterX-config.FormationSpreadX || f.X > config.CenterX+config.FormationSpreadX {
				t.Errorf("Wave %d formation %d: spawn x %.0f outside spread", tt.wave, i, f.X)
			}
		}
		if got := plan.EnemyCount(); got != tt.formations*tt.perFormation {
			t.Errorf("Wave %d: expected %d enemies, got %d", tt.wave, tt.formations*tt.perFormation, got)
		}
	}

	t.Run("早期波次只有侦察机", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			for _, f := range r.Waves.PlanWave(1).Formations {
				if f.EnemyType != types.EnemyScout {
					t.Fatalf("Wave 1 should only contain scouts, got %s", f.EnemyType)
				}
			}
		}
	})
}

func TestWaveCounter(t *testing.T) {
	t.Run("剩余数不会为负且只完成一次", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.BeginWave(1, WavePlan{Formations: []FormationSpawn{{Type: types.FormationV, EnemyType: types.EnemyScout, Count: 2, X: config.CenterX, Y: 100}}})

		if r.Waves.EnemiesRemaining() != 2 || r.Waves.IsComplete() {
			t.Fatalf("Expected 2 remaining and incomplete, got %d / %v", r.Waves.EnemiesRemaining(), r.Waves.IsComplete())
		}
		r.Waves.OnEnemyKilled()
		r.Waves.OnEnemyExited()
		if !r.Waves.IsComplete() {
			t.Fatal("Wave should be complete")
		}
		r.Waves.OnEnemyKilled()
		r.Waves.OnEnemyExited()

		if r.Waves.EnemiesRemaining() != 0 {
			t.Errorf("Remaining must floor at 0, got %d", r.Waves.EnemiesRemaining())
		}
		if r.Waves.Kills() != 1 {
			t.Errorf("Expected 1 counted kill, got %d", r.Waves.Kills())
		}
		if r.Waves.ClearPercent() != 0.5 {
			t.Errorf("Expected clear percent 0.5, got %v", r.Waves.ClearPercent())
		}
	})

	t.Run("空波次立即完成", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.BeginWave(1, WavePlan{Formations: []FormationSpawn{{Type: types.FormationGrid, Count: 0}}})
		if !r.Waves.IsComplete() {
			t.Error("A wave with no enemies is complete immediately")
		}
		if r.Waves.ClearPercent() != 1 {
			t.Errorf("Expected clear percent 1, got %v", r.Waves.ClearPercent())
		}
	})

	t.Run("编队离场计入波次", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.BeginWave(1, WavePlan{Formations: []FormationSpawn{{Type: types.FormationWave, EnemyType: types.EnemyScout, Count: 3, X: config.CenterX, Y: config.FormationExitY + 50}}})
		r.tick(16)

		if !r.Waves.IsComplete() {
			t.Errorf("Expected exits to complete the wave, remaining %d", r.Waves.EnemiesRemaining())
		}
		if r.Waves.Kills() != 0 {
			t.Errorf("Exits must not count as kills, got %d", r.Waves.Kills())
		}
		if r.Score.Score() != 0 {
			t.Errorf("Exits must not score, got %d", r.Score.Score())
		}
	})
}

func TestWaveSpawning(t *testing.T) {
	t.Run("编队按间隔出生", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.BeginWave(3, WavePlan{Formations: []FormationSpawn{
			{Type: types.FormationV, EnemyType: types.EnemyScout, Count: 3, X: config.CenterX, Y: -50},
			{Type: types.FormationGrid, EnemyType: types.EnemyFighter, Count: 4, X: config.CenterX, Y: -150, DelayMs: 2000},
		}})

		if got := len(r.Formations.Formations()); got != 1 {
			t.Fatalf("Expected 1 immediate formation, got %d", got)
		}
		r.advance(1999)
		if got := len(r.Formations.Formations()); got != 1 {
			t.Fatalf("Second formation spawned early")
		}
		r.advance(1)
		if got := len(r.Formations.Formations()); got != 2 {
			t.Fatalf("Expected 2 formations, got %d", got)
		}
		if r.Waves.EnemiesRemaining() != 7 {
			t.Errorf("Expected 7 remaining, got %d", r.Waves.EnemiesRemaining())
		}
	})

	t.Run("旧波次的延迟出生失效", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.BeginWave(1, WavePlan{Formations: []FormationSpawn{
			{Type: types.FormationV, EnemyType: types.EnemyScout, Count: 3, X: config.CenterX, Y: -50, DelayMs: 1000},
		}})
		r.Waves.BeginWave(2, WavePlan{})
		r.advance(5000)

		if got := len(r.Formations.Formations()); got != 0 {
			t.Errorf("Stale spawn should be skipped, got %d formations", got)
		}
	})

	t.Run("Boss 波延迟生成 Boss", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.StartWave(10)

		if !r.Waves.IsBossWave() || r.Waves.EnemiesRemaining() != 1 {
			t.Fatalf("Expected boss wave with 1 remaining, got %v / %d", r.Waves.IsBossWave(), r.Waves.EnemiesRemaining())
		}
		if _, ok := r.Bosses.Active(); ok {
			t.Fatal("Boss should not spawn immediately")
		}
		r.advance(500)
		id, ok := r.Bosses.Active()
		if !ok {
			t.Fatal("Expected boss after 500ms")
		}
		boss, _ := ecs.GetComponent[*components.BossComponent](r.em(), id)
		if boss.Type != types.BossDreadnought {
			t.Errorf("Expected dreadnought on wave 10, got %s", boss.Type)
		}
	})

	t.Run("Boss 击败完成波次", func(t *testing.T) {
		r := newTestRig(t)
		r.Waves.StartWave(5)
		r.advance(500)
		id, _ := r.Bosses.Active()
		r.Bosses.Update(config.BossEnterDurationMs)

		r.Bosses.ApplyDamage(id, 100000)
		r.advance(config.BossDefeatDelayMs)

		if !r.Waves.IsComplete() {
			t.Error("Defeating the boss should complete the wave")
		}
		if r.Waves.ClearPercent() != 1 {
			t.Errorf("Expected clear percent 1, got %v", r.Waves.ClearPercent())
		}
	})
}
