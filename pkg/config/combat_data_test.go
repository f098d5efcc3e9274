package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/fortune/pkg/types"
)

// repoDataDir 仓库中的真实数据表目录
const repoDataDir = "../../data"

func TestLoadCombatDataFromRepo(t *testing.T) {
	data, err := LoadCombatData(repoDataDir)
	if err != nil {
		t.Fatalf("LoadCombatData failed: %v", err)
	}

	t.Run("敌机属性", func(t *testing.T) {
		scout := data.Enemies.Get(types.EnemyScout)
		if scout.Health != 10 || scout.Points != 50 || scout.DropChance != 0.3 {
			t.Errorf("unexpected scout stats: %+v", scout)
		}
		fighter := data.Enemies.Get(types.EnemyFighter)
		if !fighter.Shoots() || fighter.ShootIntervalMs != 2000 {
			t.Errorf("fighter should shoot every 2000ms, got %+v", fighter)
		}
		if data.Enemies.Get(types.EnemyBomber).Shoots() {
			t.Error("bomber should not shoot")
		}
		if got := data.Enemies.Get("mystery"); got != scout {
			t.Errorf("unknown type should fall back to scout, got %+v", got)
		}
	})

	t.Run("Boss 轮换与阶段", func(t *testing.T) {
		if len(data.Bosses.Roster) != 5 {
			t.Fatalf("expected 5 bosses in roster, got %d", len(data.Bosses.Roster))
		}
		if data.Bosses.RosterAt(0) != types.BossMothership || data.Bosses.RosterAt(5) != types.BossMothership {
			t.Error("roster should cycle starting at mothership")
		}
		for _, name := range data.Bosses.Roster {
			_, def := data.Bosses.Get(types.BossType(name))
			if len(def.Phases) != BossPhaseCount {
				t.Errorf("boss %s: expected %d phases", name, BossPhaseCount)
			}
		}

		bossType, def := data.Bosses.Get("unknown")
		if bossType != types.BossMothership || def.MaxHealth != 1000 {
			t.Errorf("unknown boss should fall back to mothership, got %s %+v", bossType, def)
		}
		if def.Phase(2).Threshold != 0.66 || def.Phase(3).Threshold != 0.33 {
			t.Errorf("unexpected mothership thresholds")
		}
		if def.Phase(0).MoveSpeed != def.Phase(1).MoveSpeed || def.Phase(9).MoveSpeed != def.Phase(3).MoveSpeed {
			t.Error("Phase should clamp out-of-range numbers")
		}
	})

	t.Run("波次曲线", func(t *testing.T) {
		tests := []struct {
			wave, perFormation, formations int
		}{
			{1, 5, 1},
			{2, 7, 1},
			{3, 9, 2},
			{8, 19, 3},
			{9, 20, 4},
			{12, 20, 5},
			{40, 20, 5},
		}
		for _, tt := range tests {
			if got := data.Waves.EnemiesPerFormation.At(tt.wave); got != tt.perFormation {
				t.Errorf("wave %d: perFormation expected %d, got %d", tt.wave, tt.perFormation, got)
			}
			if got := data.Waves.FormationCount.At(tt.wave); got != tt.formations {
				t.Errorf("wave %d: formations expected %d, got %d", tt.wave, tt.formations, got)
			}
		}
	})

	t.Run("敌机组成分层", func(t *testing.T) {
		if got := data.Waves.TierFor(1).PickEnemyType(0.99); got != types.EnemyScout {
			t.Errorf("wave 1 should only spawn scouts, got %s", got)
		}
		if got := data.Waves.TierFor(3).PickEnemyType(0.75); got != types.EnemyFighter {
			t.Errorf("wave 3 roll 0.75 should pick fighter, got %s", got)
		}
		if got := data.Waves.TierFor(12).PickEnemyType(0.95); got != types.EnemyElite {
			t.Errorf("wave 12 roll 0.95 should pick elite, got %s", got)
		}
		if got := data.Waves.TierFor(9).PickEnemyType(0.95); got != types.EnemyBomber {
			t.Errorf("wave 9 roll 0.95 should pick bomber, got %s", got)
		}
	})

	t.Run("掉落分布", func(t *testing.T) {
		tests := []struct {
			roll float64
			want types.CollectibleType
		}{
			{0.0, types.CollectibleFortuneCoin},
			{0.049, types.CollectibleFortuneCoin},
			{0.05, types.CollectibleStar},
			{0.149, types.CollectibleStar},
			{0.15, types.CollectibleCrystal},
			{0.399, types.CollectibleCrystal},
			{0.40, types.CollectibleCoin},
			{0.999, types.CollectibleCoin},
		}
		for _, tt := range tests {
			if got := data.Collectibles.RollType(tt.roll); got != tt.want {
				t.Errorf("roll %v: expected %s, got %s", tt.roll, tt.want, got)
			}
		}
		if data.Collectibles.Value(types.CollectibleFortuneCoin) != 1000 {
			t.Error("fortune coin should be worth 1000")
		}
	})
}

func TestLoadCombatDataMissingDir(t *testing.T) {
	_, err := LoadCombatData(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing data dir")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestConfigValidation(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		load    func(string) error
		content string
		wantErr string
	}{
		{
			name:    "缺少默认敌机类型",
			load:    func(p string) error { _, err := LoadEnemyStats(p); return err },
			content: "enemies:\n  fighter: {health: 25, speed: 100, points: 100, dropChance: 0.5}\n",
			wantErr: "default enemy type scout",
		},
		{
			name:    "掉落概率越界",
			load:    func(p string) error { _, err := LoadEnemyStats(p); return err },
			content: "enemies:\n  scout: {health: 10, speed: 150, points: 50, dropChance: 1.5}\n",
			wantErr: "dropChance",
		},
		{
			name: "Boss 阈值未降序",
			load: func(p string) error { _, err := LoadBossConfig(p); return err },
			content: `roster: [mothership]
bosses:
  mothership:
    maxHealth: 100
    scoreValue: 10
    phases:
      - {threshold: 1.0, moveSpeed: 1, shootIntervalMs: 100}
      - {threshold: 0.33, moveSpeed: 1, shootIntervalMs: 100}
      - {threshold: 0.66, moveSpeed: 1, shootIntervalMs: 100}
`,
			wantErr: "threshold",
		},
		{
			name: "未知攻击方式",
			load: func(p string) error { _, err := LoadBossConfig(p); return err },
			content: `roster: [mothership]
bosses:
  mothership:
    maxHealth: 100
    scoreValue: 10
    phases:
      - {threshold: 1.0, moveSpeed: 1, shootIntervalMs: 100, attacks: [{type: laser, count: 1, speed: 1}]}
      - {threshold: 0.66, moveSpeed: 1, shootIntervalMs: 100}
      - {threshold: 0.33, moveSpeed: 1, shootIntervalMs: 100}
`,
			wantErr: "unknown attack type",
		},
		{
			name:    "轮换表引用不存在的 Boss",
			load:    func(p string) error { _, err := LoadBossConfig(p); return err },
			content: "roster: [ghost]\nbosses:\n  mothership: {maxHealth: 1}\n",
			wantErr: "roster entry ghost",
		},
		{
			name: "波次分层未升序",
			load: func(p string) error { _, err := LoadWaveRules(p); return err },
			content: `bossEvery: 5
enemiesPerFormation: {base: 3, perWave: 2, max: 20}
formationCount: {base: 1, perWave: 1, wavesPerStep: 3, max: 5}
tiers:
  - {fromWave: 1, weights: [{type: scout, weight: 1}]}
  - {fromWave: 1, weights: [{type: fighter, weight: 1}]}
`,
			wantErr: "ascending",
		},
		{
			name:    "掉落阈值未以 1.0 结束",
			load:    func(p string) error { _, err := LoadCollectibles(p); return err },
			content: "values: {coin: 100}\ndropTiers:\n  - {type: coin, threshold: 0.9}\n",
			wantErr: "must be 1.0",
		},
		{
			name:    "YAML 语法错误",
			load:    func(p string) error { _, err := LoadCollectibles(p); return err },
			content: "values: [unclosed\n",
			wantErr: "failed to parse",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tempDir, "case"+string(rune('a'+i))+".yaml", tt.content)
			err := tt.load(path)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
