package components

import (
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

// EnemyComponent 敌机数据
// 属性在创建时从 EnemyTypeStats 拷贝，之后只读
type EnemyComponent struct {
	Type       types.EnemyType
	Points     int
	DropChance float64
	// CountsTowardWave 是否计入波次剩余数（Boss 释放的无人机不计入）
	CountsTowardWave bool
}

// FormationMemberComponent 编队成员的弱引用
// 编队拥有成员生命周期，成员只读取自己的固定偏移
type FormationMemberComponent struct {
	FormationID int
	Slot        int     // 创建时的序号
	OffsetX     float64 // 相对编队参考点的固定偏移
	OffsetY     float64
}

// ShooterComponent 定时射击的敌机
type ShooterComponent struct {
	IntervalMs float64
	TimerMs    float64 // 距下次射击的剩余时间，<=0 时射击
}

// BulletOwner 子弹所属阵营
type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
	OwnerBoss
)

// BulletComponent 子弹没有生命值，命中或出界即销毁
type BulletComponent struct {
	Owner BulletOwner
	// Source 发射者（Boss 的子弹集合按 Source 归属）
	Source ecs.EntityID
}
