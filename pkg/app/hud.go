package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/scenes"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	hudText      = color.NRGBA{R: 230, G: 230, B: 240, A: 255}
	hudHighlight = color.NRGBA{R: 255, G: 220, B: 90, A: 255}
	hudDanger    = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
	barBack      = color.NRGBA{R: 60, G: 60, B: 70, A: 255}
	panelColor   = color.NRGBA{R: 16, G: 18, B: 40, A: 230}
)

const (
	bannerMs    = 1800.0
	maxBanners  = 4
	bannerGapPx = 18.0
)

type banner struct {
	text      string
	clr       color.NRGBA
	remaining float64
}

// HUD 绘制分数面板，并把语义事件转成短暂的横幅提示
type HUD struct {
	banners []banner
}

// NewHUD 创建 HUD
func NewHUD() *HUD {
	return &HUD{}
}

// Emit 实现 game.EventSink
func (h *HUD) Emit(event game.Event) {
	switch p := event.Payload.(type) {
	case game.WaveStartedPayload:
		if p.BossWave {
			h.push(fmt.Sprintf("WAVE %d - WARNING: BOSS APPROACHING", p.Wave), hudDanger)
		} else {
			h.push(fmt.Sprintf("WAVE %d", p.Wave), hudText)
		}
	case game.WaveClearedPayload:
		h.push(fmt.Sprintf("WAVE %d CLEAR  +%d", p.Wave, p.Bonus.Total), hudHighlight)
		if p.Bonus.Perfect {
			h.push("PERFECT!", hudHighlight)
		}
	case game.StreakMilestonePayload:
		h.push(fmt.Sprintf("%d STREAK  x%.2f", p.Streak, p.Multiplier), hudHighlight)
	case game.BossPhaseChangedPayload:
		if p.Phase > 1 {
			h.push(fmt.Sprintf("PHASE %d", p.Phase), hudDanger)
		}
	case game.BossDefeatedPayload:
		h.push(fmt.Sprintf("BOSS DEFEATED  +%d", p.Score), hudHighlight)
	}
}

func (h *HUD) push(s string, clr color.NRGBA) {
	h.banners = append(h.banners, banner{text: s, clr: clr, remaining: bannerMs})
	if len(h.banners) > maxBanners {
		h.banners = h.banners[len(h.banners)-maxBanners:]
	}
}

// Banners 当前显示的横幅文本
func (h *HUD) Banners() []string {
	out := make([]string, len(h.banners))
	for i, b := range h.banners {
		out[i] = b.text
	}
	return out
}

// Update 横幅计时
func (h *HUD) Update(deltaMs float64) {
	alive := h.banners[:0]
	for _, b := range h.banners {
		b.remaining -= deltaMs
		if b.remaining > 0 {
			alive = append(alive, b)
		}
	}
	h.banners = alive
}

// Draw 绘制 HUD、横幅以及商店和结算覆盖层
func (h *HUD) Draw(dst *ebiten.Image, s *scenes.GameScene) {
	enc := s.Encounter()
	em := s.World().EM

	y := config.HUDTopY
	drawText(dst, fmt.Sprintf("SCORE %d", s.Score()), config.HUDMarginX, y, hudText)
	y += config.HUDLineHeight
	drawText(dst, fmt.Sprintf("WAVE %d  LEFT %d", s.Wave(), enc.Waves.EnemiesRemaining()), config.HUDMarginX, y, hudText)
	y += config.HUDLineHeight
	if combo := enc.Score.Combo(); combo > 1 {
		drawText(dst, fmt.Sprintf("COMBO %d  x%.1f", combo, enc.Score.ComboMultiplier()), config.HUDMarginX, y, hudHighlight)
		y += config.HUDLineHeight
	}
	if streak := enc.Streak.Streak(); streak > 1 {
		drawText(dst, fmt.Sprintf("STREAK %d  x%.2f", streak, enc.Streak.Multiplier()), config.HUDMarginX, y, hudHighlight)
	}

	h.drawPlayerStatus(dst, em, enc.Player.Player())
	h.drawBossBar(dst, s)

	by := config.PlayfieldHeight/3 - float64(len(h.banners))*bannerGapPx/2
	for _, b := range h.banners {
		c := b.clr
		c.A = uint8(255 * min(1, b.remaining/400))
		drawCentered(dst, b.text, config.CenterX, by, c)
		by += bannerGapPx
	}

	switch s.State() {
	case scenes.StateShop:
		drawShop(dst, s)
	case scenes.StateGameOver:
		drawGameOver(dst, s)
	}
}

func (h *HUD) drawPlayerStatus(dst *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID) {
	x := config.PlayfieldWidth - config.HUDMarginX - config.HealthBarWidth
	y := config.HUDTopY

	if p, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
		drawText(dst, fmt.Sprintf("LIVES %d  LV %d", p.Lives, p.WeaponLevel), x, y, hudText)
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
		frac := health.Fraction()
		fill := hudText
		if frac < 0.3 {
			fill = hudDanger
		}
		drawBar(dst, x, y+config.HUDLineHeight, config.HealthBarWidth, config.HealthBarHeight, frac, fill)
	}
}

func (h *HUD) drawBossBar(dst *ebiten.Image, s *scenes.GameScene) {
	id, ok := s.Encounter().Bosses.Active()
	if !ok {
		return
	}
	em := s.World().EM
	boss, ok := ecs.GetComponent[*components.BossComponent](em, id)
	if !ok {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return
	}

	x := config.CenterX - config.BossBarWidth/2
	name := string(boss.Type)
	if boss.Config != nil && boss.Config.Name != "" {
		name = boss.Config.Name
	}
	drawText(dst, fmt.Sprintf("%s  %s", name, boss.Phase), x, config.BossBarY-config.HUDLineHeight, hudDanger)
	drawBar(dst, x, config.BossBarY, config.BossBarWidth, config.BossBarHeight, health.Fraction(), hudDanger)
}

func drawShop(dst *ebiten.Image, s *scenes.GameScene) {
	rows := len(scenes.AllUpgrades)
	p := config.ShopPanel
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), config.ShopPanelWidth, float32(config.ShopPanelHeight(rows)), panelColor, false)

	drawText(dst, "SHOP", p.X+config.HUDMarginX, p.Y+config.HUDMarginX, hudHighlight)
	drawText(dst, fmt.Sprintf("CREDITS %d", s.Currency()), p.X+config.HUDMarginX, p.Y+config.HUDMarginX+config.HUDLineHeight, hudText)

	for i, u := range scenes.AllUpgrades {
		x, y := config.ShopRowPosition(i, rows)
		clr := hudText
		if s.Currency() < u.Cost() {
			clr = barBack
		}
		drawText(dst, fmt.Sprintf("[%d] %-10s %4d", i+1, u, u.Cost()), x, y, clr)
	}
	_, lastY := config.ShopRowPosition(rows-1, rows)
	drawText(dst, "[ENTER] continue", p.X+config.HUDMarginX, lastY+config.ShopRowHeight, hudText)
}

func drawGameOver(dst *ebiten.Image, s *scenes.GameScene) {
	cy := config.PlayfieldHeight / 2
	drawCentered(dst, "GAME OVER", config.CenterX, cy-40, hudDanger)
	drawCentered(dst, fmt.Sprintf("SCORE %d  WAVE %d", s.Score(), s.Wave()), config.CenterX, cy-20, hudText)
	if rank := s.FinalRank(); rank > 0 {
		drawCentered(dst, fmt.Sprintf("NEW HIGH SCORE  #%d", rank), config.CenterX, cy, hudHighlight)
	}

	y := cy + 24
	for i, score := range s.Leaderboard().Scores() {
		drawCentered(dst, fmt.Sprintf("%2d. %8d", i+1, score), config.CenterX, y, hudText)
		y += config.HUDLineHeight
	}
	drawCentered(dst, "[ENTER] play again", config.CenterX, y+config.HUDLineHeight, hudText)
}

func drawBar(dst *ebiten.Image, x, y, w, h, frac float64, fill color.Color) {
	frac = max(0, min(1, frac))
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), barBack, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w*frac), float32(h), fill, false)
}

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

func drawCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, 0)
	drawText(dst, s, cx-w/2, y, clr)
}
