package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/fortune/pkg/app"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/embedded"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/utils"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	dataDir = flag.String("data", "", "从磁盘目录加载数据表（默认使用内嵌数据）")
	watch   = flag.Bool("watch", false, "监听数据目录，修改后从下一波开始生效")
	seed    = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = config.DefaultDataDir
	}
	// 热重载必须读磁盘，否则内嵌数据会遮住修改
	if *dataDir == "" && !*watch {
		embedded.Init(dataFS)
	}

	if err := utils.PrepareSaveDir(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	var (
		store    game.ScoreStore
		settings *game.SettingsManager
	)
	manager, err := gdata.Open(gdata.Config{AppName: "fortune"})
	if err != nil {
		log.Printf("[Main] Warning: persistence unavailable, running in memory: %v", err)
		settings = game.NewSettingsManager(nil)
	} else {
		store = game.NewGdataScoreStore(manager)
		settings = game.NewSettingsManager(manager)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		DataDir:  dir,
		Seed:     *seed,
		Store:    store,
		Settings: settings,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := config.WatchCombatData(ctx, dir, gameApp.OfferData); err != nil {
			log.Printf("[Main] Warning: hot reload disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
