package components

// PositionComponent 实体在游戏场中的位置（像素，原点在左上角，Y轴向下）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（像素/秒）
// 由 MovementSystem 积分；编队成员和入场中的 Boss 由各自系统直接设置位置
type VelocityComponent struct {
	VX float64
	VY float64
}
