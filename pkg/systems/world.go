package systems

import (
	"math/rand"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/game"
)

// World 一局游戏中所有系统共享的上下文
// 由 Run Controller 创建并显式传给各系统，系统之间不通过全局状态通信
type World struct {
	EM        *ecs.EntityManager
	Scheduler *game.Scheduler
	Clock     game.Clock

	Effects game.EffectsSink
	Audio   game.AudioSink
	Events  game.EventSink

	// Rand 注入的随机源，相同种子得到相同的一局
	Rand *rand.Rand
	// Data 静态数据表，热重载时在波次开始处整体替换
	Data *config.CombatData
}

// NewWorld 创建使用空实现协作者的上下文
func NewWorld(data *config.CombatData, clock game.Clock, seed int64) *World {
	return &World{
		EM:        ecs.NewEntityManager(),
		Scheduler: game.NewScheduler(),
		Clock:     clock,
		Effects:   game.NopEffects{},
		Audio:     game.NopAudio{},
		Events:    game.NopEvents{},
		Rand:      rand.New(rand.NewSource(seed)),
		Data:      data,
	}
}

// NowMs 当前游戏时间，未设置时钟时使用调度器时间
func (w *World) NowMs() float64 {
	if w.Clock == nil {
		return w.Scheduler.NowMs()
	}
	return w.Clock.NowMs()
}

// Emit 发出语义事件
func (w *World) Emit(t game.EventType, payload any) {
	w.Events.Emit(game.Event{Type: t, Payload: payload})
}

// aliveCheck 返回实体存活检查，供延迟任务使用
func (w *World) aliveCheck(id ecs.EntityID) func() bool {
	return func() bool { return w.EM.IsAlive(id) }
}
