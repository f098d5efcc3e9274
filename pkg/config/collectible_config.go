package config

import (
	"fmt"

	"github.com/gonewx/fortune/pkg/embedded"
	"github.com/gonewx/fortune/pkg/types"
	"gopkg.in/yaml.v3"
)

// DropTier 掉落类型的累积概率阈值
type DropTier struct {
	Type      string  `yaml:"type"`
	Threshold float64 `yaml:"threshold"` // 累积阈值，升序，最后一项为 1.0
}

// CollectibleConfig 掉落物配置
type CollectibleConfig struct {
	Values    map[string]int `yaml:"values"`    // 类型 -> 分值
	DropTiers []DropTier     `yaml:"dropTiers"` // 掉落类型分布
}

// LoadCollectibles 从 YAML 文件加载掉落物配置
func LoadCollectibles(filepath string) (*CollectibleConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read collectibles file %s: %w", filepath, err)
	}

	var config CollectibleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse collectibles YAML from %s: %w", filepath, err)
	}

	if err := validateCollectibles(&config); err != nil {
		return nil, fmt.Errorf("invalid collectibles in %s: %w", filepath, err)
	}

	return &config, nil
}

func validateCollectibles(config *CollectibleConfig) error {
	if _, ok := config.Values[string(types.DefaultCollectibleType)]; !ok {
		return fmt.Errorf("default collectible type %s is required", types.DefaultCollectibleType)
	}
	for name, v := range config.Values {
		if v < 0 {
			return fmt.Errorf("collectible %s: value cannot be negative, got %d", name, v)
		}
	}

	if len(config.DropTiers) == 0 {
		return fmt.Errorf("dropTiers cannot be empty")
	}
	prev := 0.0
	for _, tier := range config.DropTiers {
		if _, ok := config.Values[tier.Type]; !ok {
			return fmt.Errorf("drop tier %s has no value", tier.Type)
		}
		if tier.Threshold <= prev || tier.Threshold > 1 {
			return fmt.Errorf("drop tier %s: threshold must be ascending within (0,1], got %v", tier.Type, tier.Threshold)
		}
		prev = tier.Threshold
	}
	if prev != 1 {
		return fmt.Errorf("last drop tier threshold must be 1.0, got %v", prev)
	}

	return nil
}

// Value 返回掉落物分值，未知类型按 coin 计
func (c *CollectibleConfig) Value(t types.CollectibleType) int {
	if v, ok := c.Values[string(t)]; ok {
		return v
	}
	return c.Values[string(types.DefaultCollectibleType)]
}

// RollType 用 [0,1) 的随机数按累积阈值选择掉落类型
func (c *CollectibleConfig) RollType(roll float64) types.CollectibleType {
	for _, tier := range c.DropTiers {
		if roll < tier.Threshold {
			return types.ParseCollectibleType(tier.Type)
		}
	}
	return types.DefaultCollectibleType
}
