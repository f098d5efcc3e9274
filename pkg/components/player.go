package components

// PlayerComponent 玩家飞船状态
type PlayerComponent struct {
	Lives int
	Speed float64

	WeaponLevel  int
	BulletSpread int
	FireRateMs   float64
	FireTimerMs  float64 // 距下次自动射击的剩余时间

	Invincible bool // 复活后的无敌窗口
	IsDying    bool // 死亡演出中

	// 输入方向（-1..1），由宿主每帧设置
	InputX float64
	InputY float64
}
