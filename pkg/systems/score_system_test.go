package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/types"
)

func TestComboMultiplier(t *testing.T) {
	r := newTestRig(t)

	for k := 1; k <= 8; k++ {
		r.Score.AddCollectible(100, types.CollectibleCoin)
		require.Equal(t, k, r.Score.Combo())
		assert.InDelta(t, 1+float64(k)*0.1, r.Score.ComboMultiplier(), 1e-9)
		r.clock.Advance(500)
	}
	assert.Equal(t, 8, r.Score.MaxCombo())

	t.Run("超过窗口重新开始", func(t *testing.T) {
		r.clock.Advance(config.ComboChainWindowMs)
		r.Score.AddCollectible(100, types.CollectibleCoin)
		assert.Equal(t, 1, r.Score.Combo())
		assert.Equal(t, 8, r.Score.MaxCombo())
	})

	t.Run("无拾取后衰减为零", func(t *testing.T) {
		r.Score.Update(config.ComboDecayMs - 1)
		assert.Equal(t, 1, r.Score.Combo())
		r.Score.Update(1)
		assert.Equal(t, 0, r.Score.Combo())
		assert.Equal(t, 1.0, r.Score.ComboMultiplier())
	})
}

func TestScoreArithmetic(t *testing.T) {
	r := newTestRig(t)

	assert.Equal(t, 75, r.Score.AddScore(75))

	// 连击 1：倍率 1.1
	r.Score.AddCollectible(1000, types.CollectibleFortuneCoin)
	assert.Equal(t, 75+int(math.Floor(1000*1.1)), r.Score.Score())

	before := r.Score.Score()
	got := r.Score.AddKillScore(250, 1.25)
	assert.Equal(t, int(math.Floor(250*1.25*r.Score.ComboMultiplier())), got)
	assert.Equal(t, before+got, r.Score.Score())
	assert.Equal(t, 1, r.Score.Kills())

	before = r.Score.Score()
	assert.Equal(t, 300, r.Score.AddBonus(300, BonusWaveClear), "bonuses ignore the combo multiplier")
	assert.Equal(t, before+300, r.Score.Score())
	assert.Equal(t, 300, r.Score.BonusTotal(BonusWaveClear))
	assert.Zero(t, r.Score.AddBonus(0, BonusAccuracy))

	ev, ok := r.events.Last(game.EventScoreChanged)
	require.True(t, ok)
	assert.Equal(t, game.ScoreChangedPayload{Score: r.Score.Score(), Delta: 300}, ev.Payload)
}

func TestKillStreak(t *testing.T) {
	r := newTestRig(t)

	var mult float64
	for i := 1; i <= 40; i++ {
		mult, _ = r.Streak.RegisterKill()
		r.clock.Advance(100)
	}
	assert.Equal(t, 40, r.Streak.Streak())
	assert.Equal(t, config.StreakMaxMultiplier, mult)

	mult, _ = r.Streak.RegisterKill()
	assert.Equal(t, config.StreakMaxMultiplier, mult, "multiplier is capped")

	milestones := r.events.Of(game.EventStreakMilestone)
	require.Len(t, milestones, 5)
	for i, ev := range milestones {
		p := ev.Payload.(game.StreakMilestonePayload)
		assert.Equal(t, config.StreakMilestones[i], p.Streak)
	}

	t.Run("计时归零后清空", func(t *testing.T) {
		r.Streak.Update(config.StreakWindowMs)
		assert.Zero(t, r.Streak.Streak())
		assert.Equal(t, 1.0, r.Streak.Multiplier())
		assert.Equal(t, 41, r.Streak.MaxStreak())
	})

	t.Run("清空后里程碑可再次播报", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			r.Streak.RegisterKill()
		}
		assert.Equal(t, 6, r.events.Count(game.EventStreakMilestone))
	})

	t.Run("间隔超过窗口从 1 开始", func(t *testing.T) {
		r.clock.Advance(config.StreakWindowMs)
		_, milestone := r.Streak.RegisterKill()
		assert.Equal(t, 1, r.Streak.Streak())
		assert.Zero(t, milestone)
	})
}

func TestGraze(t *testing.T) {
	r := newTestRig(t)
	player := r.Player.Spawn()
	r.Bonus.StartWave(1)
	px, py := config.CenterX, config.PlayerSpawnY

	grazing := entities.NewEnemyBullet(r.em(), 0, px+30, py, 0, 0)
	entities.NewEnemyBullet(r.em(), 0, px+10, py, 0, 0) // 命中范围内
	entities.NewEnemyBullet(r.em(), 0, px+60, py, 0, 0) // 擦弹范围外
	entities.NewPlayerBullet(r.em(), px, py-35, 0)      // 自己的子弹
	entities.NewBossBullet(r.em(), 0, px, py+config.GrazeRadius-1, 0, 0)

	assert.Equal(t, 2, r.Bonus.CheckGraze(player))
	assert.Equal(t, 0, r.Bonus.CheckGraze(player), "each bullet grazes once")
	assert.Equal(t, 2, r.Bonus.GrazeCount())
	assert.Equal(t, 2*config.GrazePoints, r.Score.Score())
	assert.Equal(t, 2, r.events.Count(game.EventGraze))
	assert.True(t, r.em().IsAlive(grazing), "grazing never destroys the bullet")

	t.Run("无敌时不计擦弹", func(t *testing.T) {
		entities.NewEnemyBullet(r.em(), 0, px-30, py, 0, 0)
		r.Player.Heal()
		p, _ := r.Player.state()
		p.Invincible = true
		assert.Zero(t, r.Bonus.CheckGraze(player))
		p.Invincible = false
		assert.Equal(t, 1, r.Bonus.CheckGraze(player))
	})

	t.Run("结算只展示擦弹，不重复加分", func(t *testing.T) {
		b := r.Bonus.CalculateWaveBonuses(0, 1)
		assert.Equal(t, 3, b.GrazeCount)
		assert.Equal(t, 3*config.GrazePoints, b.GrazePoints)
		assert.Equal(t, b.WaveClear+b.Accuracy, b.Total)
	})
}

func TestGrazeBoundaries(t *testing.T) {
	t.Run("两端边界都不计擦弹", func(t *testing.T) {
		r := newTestRig(t)
		player := r.Player.Spawn()
		r.Bonus.StartWave(1)
		px, py := config.CenterX, config.PlayerSpawnY

		entities.NewEnemyBullet(r.em(), 0, px+config.GrazeHitRadius, py, 0, 0)
		entities.NewBossBullet(r.em(), 0, px, py-config.GrazeRadius, 0, 0)
		assert.Zero(t, r.Bonus.CheckGraze(player))

		entities.NewEnemyBullet(r.em(), 0, px+config.GrazeHitRadius+0.5, py, 0, 0)
		entities.NewBossBullet(r.em(), 0, px, py-config.GrazeRadius+0.5, 0, 0)
		assert.Equal(t, 2, r.Bonus.CheckGraze(player))
	})

	t.Run("子弹穿过擦弹环只计一次", func(t *testing.T) {
		r := newTestRig(t)
		r.Player.Spawn()
		r.Bonus.StartWave(1)
		px, py := config.CenterX, config.PlayerSpawnY

		// 水平偏移 35，始终在命中半径外
		bullet := entities.NewEnemyBullet(r.em(), 0, px+35, py-150, 0, 300)
		inside := 0
		for i := 0; i < 10; i++ {
			r.tick(100)
			if pos, ok := ecs.GetComponent[*components.PositionComponent](r.em(), bullet); ok {
				if d := math.Hypot(pos.X-px, pos.Y-py); d > config.GrazeHitRadius && d < config.GrazeRadius {
					inside++
				}
			}
		}
		require.Greater(t, inside, 1, "bullet should spend several frames in the ring")
		assert.Equal(t, 1, r.Bonus.GrazeCount())
		assert.Equal(t, 1, r.events.Count(game.EventGraze))
		assert.Equal(t, config.GrazePoints, r.Score.Score())
	})
}

func TestWaveBonuses(t *testing.T) {
	shots := func(r *testRig, fired, hit int) {
		for i := 0; i < fired; i++ {
			r.Bonus.RecordShotFired()
		}
		for i := 0; i < hit; i++ {
			r.Bonus.RecordShotHit()
		}
	}

	t.Run("完美快速清场", func(t *testing.T) {
		r := newTestRig(t)
		r.Bonus.StartWave(3)
		shots(r, 10, 9)
		r.clock.Advance(10000)

		b := r.Bonus.CalculateWaveBonuses(10, 10)
		base := float64(config.WaveClearBasePerWave * 3)
		assert.True(t, b.Perfect)
		assert.True(t, b.Fast)
		assert.Equal(t, int(math.Floor(math.Floor(base*config.PerfectMultiplier)*config.FastMultiplier)), b.WaveClear)
		assert.Equal(t, 4500, b.WaveClear)
		assert.Equal(t, 2*config.AccuracyBase, b.Accuracy)
		assert.Equal(t, 6500, b.Total)
	})

	t.Run("受伤且超时", func(t *testing.T) {
		r := newTestRig(t)
		r.Bonus.StartWave(3)
		r.Bonus.RecordDamageTaken()
		r.clock.Advance(config.FastClearMs)

		b := r.Bonus.CalculateWaveBonuses(10, 10)
		assert.False(t, b.Perfect)
		assert.False(t, b.Fast)
		assert.Equal(t, 1500, b.WaveClear)
		assert.Zero(t, b.Accuracy, "no shots fired")
	})

	t.Run("清场比例不足", func(t *testing.T) {
		r := newTestRig(t)
		r.Bonus.StartWave(2)
		b := r.Bonus.CalculateWaveBonuses(79, 100)
		assert.Zero(t, b.WaveClear)
		b = r.Bonus.CalculateWaveBonuses(80, 100)
		assert.Equal(t, int(math.Floor(1000*config.FastMultiplier)), b.WaveClear)
	})

	t.Run("命中率分档", func(t *testing.T) {
		tests := []struct {
			hit  int
			want int
		}{
			{3, 0},
			{4, config.AccuracyBase / 2},
			{6, config.AccuracyBase},
			{8, 2 * config.AccuracyBase},
		}
		for _, tt := range tests {
			r := newTestRig(t)
			r.Bonus.StartWave(1)
			shots(r, 10, tt.hit)
			assert.Equal(t, tt.want, r.Bonus.CalculateWaveBonuses(1, 1).Accuracy, "hit %d/10", tt.hit)
		}
	})

	t.Run("结算发放奖励", func(t *testing.T) {
		r := newTestRig(t)
		r.Bonus.StartWave(1)
		shots(r, 10, 10)
		b := r.Bonus.SettleWave(5, 5)
		assert.Equal(t, b.Total, r.Score.Score())
		assert.Equal(t, b.WaveClear, r.Score.BonusTotal(BonusWaveClear))
		assert.Equal(t, b.Accuracy, r.Score.BonusTotal(BonusAccuracy))
	})
}
