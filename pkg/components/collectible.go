package components

import "github.com/gonewx/fortune/pkg/types"

// CollectibleComponent 掉落物
type CollectibleComponent struct {
	Type  types.CollectibleType
	Value int
	// Collected 一次性写入的拾取标记，防止同帧重复重叠事件造成重复计分
	Collected bool
	// Attracted 是否已被玩家磁吸（仅用于表现）
	Attracted bool
}
