package types

// BossType Boss 类型（与 data/bosses.yaml 中的键一致）
type BossType string

const (
	BossMothership  BossType = "mothership"
	BossDreadnought BossType = "dreadnought"
	BossHiveQueen   BossType = "hive_queen"
	BossStarSerpent BossType = "star_serpent"
	BossVoidTitan   BossType = "void_titan"
)

// DefaultBossType 未知 Boss 类型时的回退类型
const DefaultBossType = BossMothership

// BossPhase Boss 状态机状态
type BossPhase int

const (
	BossEntering BossPhase = iota // 入场中（不响应常规更新）
	BossPhase1
	BossPhase2
	BossPhase3
	BossDying // 死亡演出中
)

// Number 返回阶段编号（1..3），入场返回 0，死亡返回 -1
func (p BossPhase) Number() int {
	switch p {
	case BossPhase1:
		return 1
	case BossPhase2:
		return 2
	case BossPhase3:
		return 3
	case BossDying:
		return -1
	}
	return 0
}

func (p BossPhase) String() string {
	switch p {
	case BossEntering:
		return "entering"
	case BossPhase1:
		return "phase1"
	case BossPhase2:
		return "phase2"
	case BossPhase3:
		return "phase3"
	case BossDying:
		return "dying"
	}
	return "unknown"
}

// PhaseFromNumber 根据阶段编号返回状态，越界时夹到 1..3
func PhaseFromNumber(n int) BossPhase {
	switch {
	case n <= 1:
		return BossPhase1
	case n == 2:
		return BossPhase2
	}
	return BossPhase3
}
