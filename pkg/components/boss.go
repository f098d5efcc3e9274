package components

import (
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/types"
)

// BossComponent Boss 状态机数据
type BossComponent struct {
	Type   types.BossType
	Config *config.BossDefinition // 共享只读配置

	Phase         types.BossPhase
	MoveDirection float64 // 1 向右，-1 向左
	MoveSpeed     float64 // 随阶段切换从配置拷贝
	ShootInterval float64 // 毫秒，随阶段切换从配置拷贝
	ShootTimerMs  float64 // 距下次开火的剩余时间

	EnterElapsedMs float64 // 入场已进行的时间
	Defeated       bool    // 已发出击败信号
}

// PhaseConfig 返回当前阶段的配置，入场或死亡时返回第一阶段
func (b *BossComponent) PhaseConfig() config.BossPhaseConfig {
	n := b.Phase.Number()
	if n < 1 {
		n = 1
	}
	return b.Config.Phase(n)
}
