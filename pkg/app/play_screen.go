package app

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/scenes"
	"github.com/gonewx/fortune/pkg/utils"
)

var shopKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// PlayScreen 一局游戏：键盘/触摸输入、场景推进和绘制
type PlayScreen struct {
	scene    *scenes.GameScene
	effects  *EffectLayer
	renderer *Renderer
	hud      *HUD
	touch    bool
	paused   bool

	// onRestart 结算画面确认后开始新一局
	onRestart func()
}

// NewPlayScreen 创建并开始一局
func NewPlayScreen(data *config.CombatData, seed int64, sink game.AudioSink, lb *game.Leaderboard, onRestart func()) (*PlayScreen, error) {
	effects := NewEffectLayer(seed)
	hud := NewHUD()
	scene, err := scenes.NewGameScene(scenes.Options{
		Data:        data,
		Seed:        seed,
		Leaderboard: lb,
		Effects:     effects,
		Audio:       sink,
		Events:      hud,
	})
	if err != nil {
		return nil, err
	}

	p := &PlayScreen{
		scene:     scene,
		effects:   effects,
		renderer:  NewRenderer(seed),
		hud:       hud,
		touch:     utils.IsMobile(),
		onRestart: onRestart,
	}
	scene.Start()
	return p, nil
}

// Scene 当前一局
func (p *PlayScreen) Scene() *scenes.GameScene {
	return p.scene
}

// Update 实现 Screen
func (p *PlayScreen) Update(deltaMs float64) {
	switch p.scene.State() {
	case scenes.StateGameOver:
		p.updateGameOver()
	case scenes.StateShop:
		p.updateShop()
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.paused = !p.paused
			log.Printf("[PlayScreen] Paused: %v", p.paused)
		}
		if p.paused {
			return
		}
		p.updateSteering()
		p.scene.Update(deltaMs)
	}

	p.effects.Update(deltaMs)
	p.renderer.Update(deltaMs)
	p.hud.Update(deltaMs)
}

func (p *PlayScreen) updateSteering() {
	x, y := utils.ReadKeyboardSteering()
	if p.touch {
		em := p.scene.World().EM
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, p.scene.Encounter().Player.Player()); ok {
			if tx, ty, touching := utils.ReadTouchSteering(pos.X, pos.Y); touching {
				x, y = tx, ty
			}
		}
	}
	p.scene.SetInput(x, y)
}

func (p *PlayScreen) updateShop() {
	for i, key := range shopKeys {
		if i < len(scenes.AllUpgrades) && inpututil.IsKeyJustPressed(key) {
			p.purchase(scenes.AllUpgrades[i])
		}
	}
	if pressed, x, y := utils.IsJustTouchedOrClicked(); pressed {
		if i, ok := shopRowAt(float64(x), float64(y)); ok {
			p.purchase(scenes.AllUpgrades[i])
		} else {
			p.scene.CloseShop()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.scene.CloseShop()
	}
}

func (p *PlayScreen) purchase(u scenes.Upgrade) {
	err := p.scene.Purchase(u)
	switch {
	case err == nil:
	case errors.Is(err, scenes.ErrInsufficientFunds):
		log.Printf("[PlayScreen] Cannot afford %s: %v", u, err)
	default:
		log.Printf("[PlayScreen] Purchase failed: %v", err)
	}
}

// shopRowAt 点击位置对应的升级项
func shopRowAt(x, y float64) (int, bool) {
	rows := len(scenes.AllUpgrades)
	for i := 0; i < rows; i++ {
		rx, ry := config.ShopRowPosition(i, rows)
		if x >= rx && x <= rx+config.ShopPanelWidth-2*config.HUDMarginX && y >= ry && y < ry+config.ShopRowHeight {
			return i, true
		}
	}
	return 0, false
}

func (p *PlayScreen) updateGameOver() {
	pressed, _, _ := utils.IsJustTouchedOrClicked()
	if pressed || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if p.onRestart != nil {
			p.onRestart()
		}
	}
}

// OfferData 转交热重载的数据表
func (p *PlayScreen) OfferData(data *config.CombatData) {
	p.scene.OfferData(data)
}

// Draw 实现 Screen
func (p *PlayScreen) Draw(screen *ebiten.Image) {
	ox, oy := p.effects.Offset()
	p.renderer.Draw(screen, p.scene.World().EM, p.scene.World().NowMs(), ox, oy)
	p.effects.Draw(screen, ox, oy)
	p.hud.Draw(screen, p.scene)
	if p.paused {
		drawCentered(screen, "PAUSED", config.CenterX, config.PlayfieldHeight/2, hudHighlight)
	}
}
