package game

// Clock 提供当前游戏时间（毫秒）
// 所有计时都以游戏时间为准，暂停时不推进
type Clock interface {
	NowMs() float64
}

// TickClock 由 Run Controller 每帧推进的时钟
type TickClock struct {
	now float64
}

// NewTickClock 创建从 0 开始的时钟
func NewTickClock() *TickClock {
	return &TickClock{}
}

// Advance 推进 deltaMs 毫秒，负值被忽略
func (c *TickClock) Advance(deltaMs float64) {
	if deltaMs > 0 {
		c.now += deltaMs
	}
}

// NowMs 返回当前游戏时间
func (c *TickClock) NowMs() float64 {
	return c.now
}
