// Package types 定义共享的基础类型
package types

// EnemyType 敌机类型（与 data/enemy_stats.yaml 中的键一致）
type EnemyType string

const (
	EnemyScout   EnemyType = "scout"   // 侦察机，最弱
	EnemyFighter EnemyType = "fighter" // 战斗机，会射击
	EnemyBomber  EnemyType = "bomber"  // 轰炸机
	EnemyElite   EnemyType = "elite"   // 精英机
	EnemyDrone   EnemyType = "drone"   // Boss 释放的小型无人机
)

// DefaultEnemyType 未知类型时的回退类型
const DefaultEnemyType = EnemyScout

// ParseEnemyType 解析敌机类型字符串
// 未知类型回退为 DefaultEnemyType，不返回错误
func ParseEnemyType(s string) EnemyType {
	switch t := EnemyType(s); t {
	case EnemyScout, EnemyFighter, EnemyBomber, EnemyElite, EnemyDrone:
		return t
	}
	return DefaultEnemyType
}

// IsLarge 是否使用大号爆炸效果
func (t EnemyType) IsLarge() bool {
	return t == EnemyBomber || t == EnemyElite
}
