package config

import (
	"fmt"

	"github.com/gonewx/fortune/pkg/embedded"
	"github.com/gonewx/fortune/pkg/types"
	"gopkg.in/yaml.v3"
)

// AttackKind 攻击方式
type AttackKind string

const (
	AttackSpread   AttackKind = "spread"   // 以 Boss 为中心的对称扇形
	AttackRapid    AttackKind = "rapid"    // 间隔发射的下行连射
	AttackCircular AttackKind = "circular" // 360° 环形
	AttackCross    AttackKind = "cross"    // 沿 8 个固定方向，最多 count 发
	AttackDrones   AttackKind = "drones"   // 按概率释放两架无人机
)

// AttackSpec 单个攻击定义
// 各字段是否生效取决于 Kind：spread 使用 Count/Spacing/Speed，
// rapid/circular/cross 使用 Count/Speed，drones 只使用 Chance
type AttackSpec struct {
	Kind    AttackKind `yaml:"type"`
	Count   int        `yaml:"count"`
	Spacing float64    `yaml:"spacing"`
	Speed   float64    `yaml:"speed"`
	Chance  float64    `yaml:"chance"`
}

// BossPhaseConfig 单个阶段的配置
type BossPhaseConfig struct {
	// Threshold 生命比例首次低于该值时进入此阶段（第一阶段为 1.0）
	Threshold       float64      `yaml:"threshold"`
	MoveSpeed       float64      `yaml:"moveSpeed"`
	ShootIntervalMs float64      `yaml:"shootIntervalMs"`
	Attacks         []AttackSpec `yaml:"attacks"`
}

// BossDefinition 单个 Boss 的静态配置（运行时共享只读）
type BossDefinition struct {
	Name         string            `yaml:"name"`
	MaxHealth    int               `yaml:"maxHealth"`
	ScoreValue   int               `yaml:"scoreValue"`
	PrimaryColor string            `yaml:"primaryColor"` // 仅用于渲染
	AccentColor  string            `yaml:"accentColor"`  // 仅用于渲染
	Phases       []BossPhaseConfig `yaml:"phases"`       // 依次为第 1..3 阶段
}

// BossPhaseCount 每个 Boss 的阶段数
const BossPhaseCount = 3

// Phase 返回第 n 阶段（1 起）的配置，越界时夹到合法范围
func (d *BossDefinition) Phase(n int) BossPhaseConfig {
	if len(d.Phases) == 0 {
		return BossPhaseConfig{}
	}
	if n < 1 {
		n = 1
	}
	if n > len(d.Phases) {
		n = len(d.Phases)
	}
	return d.Phases[n-1]
}

// BossConfig Boss 配置文件结构
type BossConfig struct {
	// Roster Boss 轮换顺序
	Roster []string                  `yaml:"roster"`
	Bosses map[string]BossDefinition `yaml:"bosses"`
}

// LoadBossConfig 从 YAML 文件加载 Boss 配置
func LoadBossConfig(filepath string) (*BossConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read boss config file %s: %w", filepath, err)
	}

	var config BossConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse boss config YAML from %s: %w", filepath, err)
	}

	if err := validateBossConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid boss config in %s: %w", filepath, err)
	}

	return &config, nil
}

func validateBossConfig(config *BossConfig) error {
	if len(config.Roster) == 0 {
		return fmt.Errorf("roster cannot be empty")
	}
	if _, ok := config.Bosses[string(types.DefaultBossType)]; !ok {
		return fmt.Errorf("default boss type %s is required", types.DefaultBossType)
	}
	for _, name := range config.Roster {
		if _, ok := config.Bosses[name]; !ok {
			return fmt.Errorf("roster entry %s has no boss definition", name)
		}
	}

	for bossType, def := range config.Bosses {
		if def.MaxHealth <= 0 {
			return fmt.Errorf("boss %s: maxHealth must be positive, got %d", bossType, def.MaxHealth)
		}
		if def.ScoreValue < 0 {
			return fmt.Errorf("boss %s: scoreValue cannot be negative, got %d", bossType, def.ScoreValue)
		}
		if len(def.Phases) != BossPhaseCount {
			return fmt.Errorf("boss %s: expected %d phases, got %d", bossType, BossPhaseCount, len(def.Phases))
		}

		prev := 1.0 + 1e-9
		for i, phase := range def.Phases {
			if phase.Threshold <= 0 || phase.Threshold >= prev {
				return fmt.Errorf("boss %s phase %d: threshold must be in (0, %v), got %v", bossType, i+1, prev, phase.Threshold)
			}
			prev = phase.Threshold
			if phase.ShootIntervalMs <= 0 {
				return fmt.Errorf("boss %s phase %d: shootIntervalMs must be positive", bossType, i+1)
			}
			if phase.MoveSpeed < 0 {
				return fmt.Errorf("boss %s phase %d: moveSpeed cannot be negative", bossType, i+1)
			}
			for _, attack := range phase.Attacks {
				if err := validateAttack(attack); err != nil {
					return fmt.Errorf("boss %s phase %d: %w", bossType, i+1, err)
				}
			}
		}
	}

	return nil
}

func validateAttack(a AttackSpec) error {
	switch a.Kind {
	case AttackDrones:
		if a.Chance < 0 || a.Chance > 1 {
			return fmt.Errorf("drones chance must be within [0,1], got %v", a.Chance)
		}
		return nil
	case AttackSpread, AttackRapid, AttackCircular, AttackCross:
		if a.Count <= 0 {
			return fmt.Errorf("%s count must be positive, got %d", a.Kind, a.Count)
		}
		if a.Speed <= 0 {
			return fmt.Errorf("%s speed must be positive, got %v", a.Kind, a.Speed)
		}
		return nil
	}
	return fmt.Errorf("unknown attack type %q", a.Kind)
}

// Get 获取 Boss 定义，未知类型回退到 mothership
func (c *BossConfig) Get(bossType types.BossType) (types.BossType, *BossDefinition) {
	if def, ok := c.Bosses[string(bossType)]; ok {
		return bossType, &def
	}
	def := c.Bosses[string(types.DefaultBossType)]
	return types.DefaultBossType, &def
}

// RosterAt 返回轮换表中第 i 个 Boss（按长度取模）
func (c *BossConfig) RosterAt(i int) types.BossType {
	n := len(c.Roster)
	i %= n
	if i < 0 {
		i += n
	}
	return types.BossType(c.Roster[i])
}
