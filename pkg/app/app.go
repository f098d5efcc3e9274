// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/game"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataDir 数据表目录，为空时使用嵌入的 data/
	DataDir string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Store 排行榜存储，为 nil 时只保存在内存中
	Store game.ScoreStore
	// Settings 设置管理器，为 nil 时使用默认设置且不持久化
	Settings *game.SettingsManager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	screens     *ScreenManager
	settings    *game.SettingsManager
	audio       *ToneAudio
	leaderboard *game.Leaderboard

	data    *config.CombatData
	seed    int64
	runs    int
	reloads chan *config.CombatData

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dir := cfg.DataDir
	if dir == "" {
		dir = config.DefaultDataDir
	}
	data, err := config.LoadCombatData(dir)
	if err != nil {
		return nil, fmt.Errorf("数据表加载失败: %w", err)
	}
	log.Printf("[App] Combat data loaded from %s", dir)

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		screens:     NewScreenManager(),
		settings:    settings,
		audio:       NewToneAudio(audio.NewContext(SampleRate), settings),
		leaderboard: game.NewLeaderboard(cfg.Store),
		data:        data,
		seed:        seed,
		reloads:     make(chan *config.CombatData, 1),
		verbose:     cfg.Verbose,
	}
	a.screens.SetFactory(a.newRun)
	if !a.screens.Restart() {
		return nil, errors.New("游戏场景创建失败")
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// newRun 每局使用不同的种子，数据表取最近一次重载的版本
func (a *App) newRun() Screen {
	a.runs++
	screen, err := NewPlayScreen(a.data, a.seed+int64(a.runs), a.audio, a.leaderboard, func() { a.screens.Restart() })
	if err != nil {
		log.Printf("[App] Error: failed to create run: %v", err)
		return nil
	}
	return screen
}

// OfferData 提交热重载的数据表，可从 watcher goroutine 调用
// 只保留最新的一份，在下一帧交给当前一局
func (a *App) OfferData(data *config.CombatData) {
	for {
		select {
		case a.reloads <- data:
			return
		default:
		}
		select {
		case <-a.reloads:
		default:
		}
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settings.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
		a.saveSettings()
	}

	select {
	case data := <-a.reloads:
		a.data = data
		if ps, ok := a.screens.Current().(*PlayScreen); ok {
			ps.OfferData(data)
		}
		log.Printf("[App] Combat data reloaded")
	default:
	}

	a.screens.Update(1000 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 渲染当前画面
func (a *App) Draw(screen *ebiten.Image) {
	a.screens.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸（与游戏场一致）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
