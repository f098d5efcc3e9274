package systems

import (
	"testing"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/game"
)

const testDataDir = "../../data"

// testRig 连接好的系统集合，使用手动推进的时钟和记录型协作者
type testRig struct {
	*Encounter
	clock   *game.TickClock
	events  *game.RecordingEvents
	effects *game.RecordingEffects
	audio   *game.RecordingAudio
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	data, err := config.LoadCombatData(testDataDir)
	if err != nil {
		t.Fatalf("load combat data: %v", err)
	}

	clock := game.NewTickClock()
	w := NewWorld(data, clock, 42)
	r := &testRig{
		clock:   clock,
		events:  &game.RecordingEvents{},
		effects: &game.RecordingEffects{},
		audio:   &game.RecordingAudio{},
	}
	w.Events = r.events
	w.Effects = r.effects
	w.Audio = r.audio
	r.Encounter = NewEncounter(w)
	return r
}

// advance 推进时钟并执行到期的延迟任务
func (r *testRig) advance(deltaMs float64) {
	r.clock.Advance(deltaMs)
	r.World.Scheduler.Drain(r.clock.NowMs())
}

// tick 按运行控制器的顺序推进一帧
func (r *testRig) tick(deltaMs float64, overlaps ...Overlap) {
	r.advance(deltaMs)
	r.Simulate(deltaMs)
	r.Settle(deltaMs, overlaps)
	r.World.EM.RemoveMarkedEntities()
}

func (r *testRig) em() *ecs.EntityManager { return r.World.EM }

// hit 构造玩家子弹与目标的重叠
func (r *testRig) hit(target ecs.EntityID, kind components.CollisionKind) Overlap {
	pos, _ := ecs.GetComponent[*components.PositionComponent](r.em(), target)
	bullet := r.spawnPlayerBullet(pos.X, pos.Y)
	return Overlap{A: bullet, B: target, KindA: components.KindPlayerBullet, KindB: kind}
}

func (r *testRig) spawnPlayerBullet(x, y float64) ecs.EntityID {
	id := r.em().CreateEntity()
	r.em().AddComponent(id, &components.PositionComponent{X: x, Y: y})
	r.em().AddComponent(id, &components.BulletComponent{Owner: components.OwnerPlayer})
	r.em().AddComponent(id, &components.CollisionComponent{Kind: components.KindPlayerBullet, Radius: config.BulletRadius})
	return id
}

func healthOf(em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return h
}
