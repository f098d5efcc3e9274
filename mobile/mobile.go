//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 构建时编译：
//
//	cp -r data mobile/data && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.fortune -o build/android/fortune.aar -v ./mobile
//	cp -r data mobile/data && ebitenmobile bind -target ios -tags mobile -o build/ios/Fortune.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/fortune/pkg/app"
	"github.com/gonewx/fortune/pkg/embedded"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/utils"
)

func init() {
	embedded.Init(dataFS)

	if err := utils.PrepareSaveDir(); err != nil {
		log.Printf("[Mobile] Warning: %v", err)
	}

	cfg := app.Config{Verbose: true}
	if manager, err := gdata.Open(gdata.Config{AppName: "fortune"}); err == nil {
		cfg.Store = game.NewGdataScoreStore(manager)
		cfg.Settings = game.NewSettingsManager(manager)
	} else {
		log.Printf("[Mobile] Warning: persistence unavailable: %v", err)
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
