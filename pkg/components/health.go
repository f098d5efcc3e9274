package components

// HealthComponent 存储可被攻击实体的生命值信息
// 用于敌机、Boss 和玩家
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Fraction 返回当前生命值占最大生命值的比例
func (h *HealthComponent) Fraction() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}

// IsDepleted 生命值是否已耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.CurrentHealth <= 0
}
