package systems

import (
	"log"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/types"
)

// FormationSpawn 波次中的一次编队出生
type FormationSpawn struct {
	Type      types.FormationType
	EnemyType types.EnemyType
	Count     int
	X, Y      float64
	DelayMs   float64 // 相对波次开始，<=0 立即出生
}

// WavePlan 一个波次的完整编排
type WavePlan struct {
	Formations  []FormationSpawn
	Boss        bool
	BossType    types.BossType
	BossDelayMs float64
}

// EnemyCount 计划中计入波次的敌机总数（Boss 波为 1）
func (p WavePlan) EnemyCount() int {
	if p.Boss {
		return 1
	}
	n := 0
	for _, f := range p.Formations {
		n += max(f.Count, 0)
	}
	return n
}

// WaveDirector 波次导演
//
// 剩余数只减不增、最低为 0；完成标记只会置位一次。
// 延迟出生的任务绑定到所属波次，波次切换后旧任务自动失效。
type WaveDirector struct {
	world      *World
	formations *FormationSystem
	bosses     *BossSystem

	wave        int
	bossWave    bool
	remaining   int
	total       int
	kills       int
	complete    bool
	startedAtMs float64
	generation  int
}

// NewWaveDirector 创建波次导演
func NewWaveDirector(w *World, formations *FormationSystem, bosses *BossSystem) *WaveDirector {
	return &WaveDirector{world: w, formations: formations, bosses: bosses}
}

// PlanWave 按难度曲线生成第 n 波的编排
func (d *WaveDirector) PlanWave(n int) WavePlan {
	rules := d.world.Data.Waves
	if rules.IsBossWave(n) {
		return WavePlan{
			Boss:        true,
			BossType:    d.BossTypeForWave(n),
			BossDelayMs: rules.BossSpawnDelayMs,
		}
	}

	rng := d.world.Rand
	tier := rules.TierFor(n)
	perFormation := rules.EnemiesPerFormation.At(n)
	count := rules.FormationCount.At(n)

	plan := WavePlan{Formations: make([]FormationSpawn, 0, count)}
	for i := 0; i < count; i++ {
		formationType := types.AllFormationTypes[rng.Intn(len(types.AllFormationTypes))]
		plan.Formations = append(plan.Formations, FormationSpawn{
			Type:      formationType,
			EnemyType: tier.PickEnemyType(rng.Float64()),
			Count:     perFormation,
			X:         config.CenterX + (rng.Float64()*2-1)*config.FormationSpreadX,
			Y:         config.FormationSpawnY - config.FormationSpawnStepY*float64(i),
			DelayMs:   float64(i) * rules.FormationStaggerMs,
		})
	}
	return plan
}

// StartWave 开始第 n 波
func (d *WaveDirector) StartWave(n int) {
	d.BeginWave(n, d.PlanWave(n))
}

// BeginWave 按给定编排开始第 n 波
func (d *WaveDirector) BeginWave(n int, plan WavePlan) {
	d.generation++
	d.wave = n
	d.bossWave = plan.Boss
	d.total = plan.EnemyCount()
	d.remaining = d.total
	d.kills = 0
	d.complete = d.total == 0
	d.startedAtMs = d.world.NowMs()

	log.Printf("[WaveDirector] Wave %d started (boss=%v, enemies=%d)", n, plan.Boss, d.total)

	generation := d.generation
	current := func() bool { return d.generation == generation }

	if plan.Boss {
		bossType := plan.BossType
		d.world.Scheduler.Schedule(plan.BossDelayMs, current, func() {
			d.bosses.Spawn(bossType, config.CenterX)
		})
		return
	}

	for _, spawn := range plan.Formations {
		spawn := spawn
		if spawn.DelayMs <= 0 {
			d.spawn(spawn)
			continue
		}
		d.world.Scheduler.Schedule(spawn.DelayMs, current, func() {
			d.spawn(spawn)
		})
	}
}

func (d *WaveDirector) spawn(s FormationSpawn) {
	d.formations.Create(s.Type, s.EnemyType, s.Count, s.X, s.Y)
}

// OnEnemyKilled 计入一次击杀
func (d *WaveDirector) OnEnemyKilled() {
	if d.decrement() {
		d.kills++
	}
}

// OnEnemyExited 敌机离场或被撞毁，不计入击杀
func (d *WaveDirector) OnEnemyExited() {
	d.decrement()
}

// OnBossKilled 计入 Boss 击败
func (d *WaveDirector) OnBossKilled() {
	d.OnEnemyKilled()
}

// decrement 剩余数减一（最低为 0），返回是否实际减少
func (d *WaveDirector) decrement() bool {
	if d.remaining == 0 {
		return false
	}
	d.remaining--
	if d.remaining == 0 && !d.complete {
		d.complete = true
		log.Printf("[WaveDirector] Wave %d complete (%d enemies)", d.wave, d.total)
	}
	return true
}

// IsComplete 当前波次是否完成
func (d *WaveDirector) IsComplete() bool { return d.complete }

// IsBossWave 当前波次是否为 Boss 波
func (d *WaveDirector) IsBossWave() bool { return d.bossWave }

// BossTypeForWave 第 n 波的 Boss，按出场顺序循环
func (d *WaveDirector) BossTypeForWave(n int) types.BossType {
	every := max(d.world.Data.Waves.BossEvery, 1)
	return d.world.Data.Bosses.RosterAt(n/every - 1)
}

func (d *WaveDirector) EnemiesRemaining() int { return d.remaining }
func (d *WaveDirector) Kills() int            { return d.kills }
func (d *WaveDirector) Total() int            { return d.total }
func (d *WaveDirector) Wave() int             { return d.wave }

// ElapsedMs 当前波次已进行的时间
func (d *WaveDirector) ElapsedMs() float64 {
	return d.world.NowMs() - d.startedAtMs
}

// ClearPercent 击杀占比，空波次视为全清
func (d *WaveDirector) ClearPercent() float64 {
	if d.total == 0 {
		return 1
	}
	return float64(d.kills) / float64(d.total)
}

// Started 当前波次开始时的信息
func (d *WaveDirector) Started() game.WaveStartedPayload {
	return game.WaveStartedPayload{Wave: d.wave, BossWave: d.bossWave, Enemies: d.total}
}
