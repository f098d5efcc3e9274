// validate_data 加载并校验 data/ 下的全部数据表，输出摘要
//
//	go run ./cmd/validate_data --data data
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/types"
)

var dataDir = flag.String("data", "data", "数据表目录")

func main() {
	flag.Parse()

	data, err := config.LoadCombatData(*dataDir)
	if err != nil {
		fmt.Printf("❌ 数据表校验失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 数据表格式正确: %s\n", *dataDir)

	fmt.Println("敌机:")
	for _, t := range []types.EnemyType{types.EnemyScout, types.EnemyFighter, types.EnemyBomber, types.EnemyElite, types.EnemyDrone} {
		s := data.Enemies.Get(t)
		fmt.Printf("  %-8s hp %4d  pts %4d  drop %.2f  shoot %5.0fms\n", t, s.Health, s.Points, s.DropChance, s.ShootIntervalMs)
	}

	fmt.Println("Boss 出场顺序:")
	for i := 0; i < 5; i++ {
		bt := data.Bosses.RosterAt(i)
		_, def := data.Bosses.Get(bt)
		fmt.Printf("  wave %2d  %-12s hp %5d  score %5d\n", (i+1)*data.Waves.BossEvery, def.Name, def.MaxHealth, def.ScoreValue)
	}

	fmt.Println("难度曲线:")
	for _, n := range []int{1, 3, 6, 9, 12, 20} {
		fmt.Printf("  wave %2d  formations %d  per formation %2d\n", n, data.Waves.FormationCount.At(n), data.Waves.EnemiesPerFormation.At(n))
	}
}
