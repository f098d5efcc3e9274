package config

import (
	"fmt"
	"path/filepath"
)

// DefaultDataDir 数据表默认目录（嵌入文件系统中的路径）
const DefaultDataDir = "data"

// 数据表文件名
const (
	EnemyStatsFile   = "enemy_stats.yaml"
	BossesFile       = "bosses.yaml"
	WaveRulesFile    = "wave_rules.yaml"
	CollectiblesFile = "collectibles.yaml"
)

// CombatData 战斗所需的全部静态数据表
type CombatData struct {
	Enemies      *EnemyStatsConfig
	Bosses       *BossConfig
	Waves        *WaveRulesConfig
	Collectibles *CollectibleConfig
}

// LoadCombatData 从目录加载全部数据表
// 任一表加载失败即返回错误，不返回部分结果
func LoadCombatData(dir string) (*CombatData, error) {
	enemies, err := LoadEnemyStats(filepath.Join(dir, EnemyStatsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load combat data: %w", err)
	}
	bosses, err := LoadBossConfig(filepath.Join(dir, BossesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load combat data: %w", err)
	}
	waves, err := LoadWaveRules(filepath.Join(dir, WaveRulesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load combat data: %w", err)
	}
	collectibles, err := LoadCollectibles(filepath.Join(dir, CollectiblesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load combat data: %w", err)
	}

	return &CombatData{
		Enemies:      enemies,
		Bosses:       bosses,
		Waves:        waves,
		Collectibles: collectibles,
	}, nil
}
