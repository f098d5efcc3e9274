package config

import (
	"fmt"

	"github.com/gonewx/fortune/pkg/embedded"
	"github.com/gonewx/fortune/pkg/types"
	"gopkg.in/yaml.v3"
)

// EnemyTypeStats 单个敌机类型的属性配置
type EnemyTypeStats struct {
	Health          int     `yaml:"health"`          // 最大生命值
	Speed           float64 `yaml:"speed"`           // 独立移动时的下行速度（无人机）
	Points          int     `yaml:"points"`          // 击杀基础分
	DropChance      float64 `yaml:"dropChance"`      // 掉落概率 [0,1]
	ShootIntervalMs float64 `yaml:"shootIntervalMs"` // 射击间隔，0 表示不射击
}

// Shoots 该类型是否会射击
func (s EnemyTypeStats) Shoots() bool {
	return s.ShootIntervalMs > 0
}

// EnemyStatsConfig 敌机属性配置文件结构
type EnemyStatsConfig struct {
	Enemies map[string]EnemyTypeStats `yaml:"enemies"` // 敌机类型到属性的映射
}

// LoadEnemyStats 从 YAML 文件加载敌机属性配置
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}

	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML from %s: %w", filepath, err)
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateEnemyStats 验证敌机属性配置的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	if _, ok := config.Enemies[string(types.DefaultEnemyType)]; !ok {
		return fmt.Errorf("default enemy type %s is required", types.DefaultEnemyType)
	}

	for enemyType, stats := range config.Enemies {
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative, got %v", enemyType, stats.Speed)
		}
		if stats.Points < 0 {
			return fmt.Errorf("enemy %s: points cannot be negative, got %d", enemyType, stats.Points)
		}
		if stats.DropChance < 0 || stats.DropChance > 1 {
			return fmt.Errorf("enemy %s: dropChance must be within [0,1], got %v", enemyType, stats.DropChance)
		}
		if stats.ShootIntervalMs < 0 {
			return fmt.Errorf("enemy %s: shootIntervalMs cannot be negative, got %v", enemyType, stats.ShootIntervalMs)
		}
	}

	return nil
}

// Get 获取指定敌机类型的属性
// 未知类型回退到默认类型（scout）
func (c *EnemyStatsConfig) Get(enemyType types.EnemyType) EnemyTypeStats {
	if stats, ok := c.Enemies[string(enemyType)]; ok {
		return stats
	}
	return c.Enemies[string(types.DefaultEnemyType)]
}
