package config

import (
	"fmt"

	"github.com/gonewx/fortune/pkg/embedded"
	"github.com/gonewx/fortune/pkg/types"
	"gopkg.in/yaml.v3"
)

// CountCurve 随波次单调递增、带上限的数量曲线
// value(n) = min(Base + PerWave*n / WavesPerStep, Max)，按整数除法取整
type CountCurve struct {
	Base         int `yaml:"base"`
	PerWave      int `yaml:"perWave"`
	WavesPerStep int `yaml:"wavesPerStep"` // 0 按 1 处理
	Max          int `yaml:"max"`
}

// At 返回第 n 波的取值
func (c CountCurve) At(n int) int {
	step := c.WavesPerStep
	if step <= 0 {
		step = 1
	}
	v := c.Base + c.PerWave*n/step
	if v > c.Max {
		v = c.Max
	}
	return v
}

// TypeWeight 敌机类型权重
type TypeWeight struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// EnemyTier 从 FromWave 开始生效的敌机类型组成
type EnemyTier struct {
	FromWave int          `yaml:"fromWave"`
	Weights  []TypeWeight `yaml:"weights"`
}

// WaveRulesConfig 波次规则配置
type WaveRulesConfig struct {
	BossEvery           int         `yaml:"bossEvery"`           // 每隔多少波出现 Boss
	EnemiesPerFormation CountCurve  `yaml:"enemiesPerFormation"` // 每个编队的敌机数
	FormationCount      CountCurve  `yaml:"formationCount"`      // 每波编队数
	FormationStaggerMs  float64     `yaml:"formationStaggerMs"`  // 编队之间的出生间隔
	BossSpawnDelayMs    float64     `yaml:"bossSpawnDelayMs"`    // Boss 波开始到 Boss 出现
	Tiers               []EnemyTier `yaml:"tiers"`               // 按 FromWave 升序
}

// LoadWaveRules 从 YAML 文件加载波次规则
func LoadWaveRules(filepath string) (*WaveRulesConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave rules file %s: %w", filepath, err)
	}

	var config WaveRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse wave rules YAML from %s: %w", filepath, err)
	}

	if err := validateWaveRules(&config); err != nil {
		return nil, fmt.Errorf("invalid wave rules in %s: %w", filepath, err)
	}

	return &config, nil
}

func validateWaveRules(config *WaveRulesConfig) error {
	if config.BossEvery <= 0 {
		return fmt.Errorf("bossEvery must be positive, got %d", config.BossEvery)
	}
	if config.EnemiesPerFormation.Max <= 0 || config.FormationCount.Max <= 0 {
		return fmt.Errorf("curve max values must be positive")
	}
	if config.FormationStaggerMs < 0 || config.BossSpawnDelayMs < 0 {
		return fmt.Errorf("delays cannot be negative")
	}
	if len(config.Tiers) == 0 {
		return fmt.Errorf("at least one enemy tier is required")
	}
	if config.Tiers[0].FromWave > 1 {
		return fmt.Errorf("first tier must start at wave 1, got %d", config.Tiers[0].FromWave)
	}

	prev := 0
	for i, tier := range config.Tiers {
		if i > 0 && tier.FromWave <= prev {
			return fmt.Errorf("tier %d: fromWave must be ascending, got %d after %d", i, tier.FromWave, prev)
		}
		prev = tier.FromWave

		total := 0
		for _, w := range tier.Weights {
			if w.Weight < 0 {
				return fmt.Errorf("tier %d: weight of %s cannot be negative", i, w.Type)
			}
			if types.ParseEnemyType(w.Type) != types.EnemyType(w.Type) {
				return fmt.Errorf("tier %d: unknown enemy type %q", i, w.Type)
			}
			total += w.Weight
		}
		if total == 0 {
			return fmt.Errorf("tier %d: total weight must be positive", i)
		}
	}

	return nil
}

// IsBossWave 第 n 波是否为 Boss 波
func (c *WaveRulesConfig) IsBossWave(n int) bool {
	return n > 0 && n%c.BossEvery == 0
}

// TierFor 返回第 n 波生效的敌机组成
func (c *WaveRulesConfig) TierFor(n int) EnemyTier {
	tier := c.Tiers[0]
	for _, t := range c.Tiers {
		if n >= t.FromWave {
			tier = t
		}
	}
	return tier
}

// PickEnemyType 用 [0,1) 的随机数在权重中选择敌机类型
func (t EnemyTier) PickEnemyType(roll float64) types.EnemyType {
	total := 0
	for _, w := range t.Weights {
		total += w.Weight
	}
	target := roll * float64(total)
	acc := 0.0
	for _, w := range t.Weights {
		acc += float64(w.Weight)
		if target < acc {
			return types.EnemyType(w.Type)
		}
	}
	return types.ParseEnemyType(t.Weights[len(t.Weights)-1].Type)
}
