package app

import (
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/types"
)

var (
	backgroundColor = color.NRGBA{R: 8, G: 10, B: 24, A: 255}
	playerColor     = color.NRGBA{R: 90, G: 220, B: 255, A: 255}
	playerBullet    = color.NRGBA{R: 255, G: 250, B: 150, A: 255}
	enemyBullet     = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
	bossBullet      = color.NRGBA{R: 255, G: 90, B: 220, A: 255}
	collectibleGold = color.NRGBA{R: 255, G: 210, B: 60, A: 255}
	collectibleRare = color.NRGBA{R: 150, G: 255, B: 200, A: 255}
	starColor       = color.NRGBA{R: 200, G: 200, B: 255, A: 120}
)

var enemyColors = map[types.EnemyType]color.NRGBA{
	types.EnemyScout:   {R: 120, G: 200, B: 120, A: 255},
	types.EnemyFighter: {R: 230, G: 140, B: 60, A: 255},
	types.EnemyBomber:  {R: 180, G: 90, B: 200, A: 255},
	types.EnemyElite:   {R: 230, G: 60, B: 90, A: 255},
	types.EnemyDrone:   {R: 160, G: 160, B: 170, A: 255},
}

const (
	starCount       = 80
	starScrollSpeed = 40.0 // 像素/秒
	blinkPeriodMs   = 120.0
)

type star struct {
	x, y, depth float64
}

// Renderer 用基础几何图形绘制游戏场
type Renderer struct {
	stars []star
}

// NewRenderer 创建渲染器，星空按 seed 生成
func NewRenderer(seed int64) *Renderer {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * config.PlayfieldWidth,
			y:     rng.Float64() * config.PlayfieldHeight,
			depth: 0.3 + rng.Float64()*0.7,
		}
	}
	return &Renderer{stars: stars}
}

// Update 滚动星空
func (r *Renderer) Update(deltaMs float64) {
	for i := range r.stars {
		s := &r.stars[i]
		s.y += starScrollSpeed * s.depth * deltaMs / 1000
		if s.y > config.PlayfieldHeight {
			s.y -= config.PlayfieldHeight
		}
	}
}

// Draw 绘制背景和全部可见实体，(ox, oy) 为震屏偏移
func (r *Renderer) Draw(dst *ebiten.Image, em *ecs.EntityManager, nowMs, ox, oy float64) {
	dst.Fill(backgroundColor)
	for _, s := range r.stars {
		vector.DrawFilledRect(dst, float32(s.x), float32(s.y), float32(1+s.depth), float32(1+s.depth), starColor, false)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](em) {
		if !em.IsAlive(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		x, y := float32(pos.X+ox), float32(pos.Y+oy)
		radius := float32(col.Radius)

		switch col.Kind {
		case components.KindPlayer:
			r.drawPlayer(dst, em, id, x, y, radius, nowMs)
		case components.KindPlayerBullet:
			vector.DrawFilledRect(dst, x-2, y-radius*2, 4, radius*4, playerBullet, false)
		case components.KindEnemyBullet:
			vector.DrawFilledCircle(dst, x, y, radius, enemyBullet, true)
		case components.KindBossBullet:
			vector.DrawFilledCircle(dst, x, y, radius+1, bossBullet, true)
		case components.KindEnemy:
			r.drawEnemy(dst, em, id, x, y, radius)
		case components.KindBoss:
			r.drawBoss(dst, em, id, x, y, radius)
		case components.KindCollectible:
			r.drawCollectible(dst, em, id, x, y, radius, nowMs)
		}
	}
}

func (r *Renderer) drawPlayer(dst *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID, x, y, radius float32, nowMs float64) {
	p, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok || p.IsDying {
		return
	}
	if p.Invincible && int(nowMs/blinkPeriodMs)%2 == 1 {
		return
	}
	vector.DrawFilledCircle(dst, x, y, radius, playerColor, true)
	vector.DrawFilledRect(dst, x-3, y-radius-6, 6, 10, playerColor, false)
	vector.StrokeCircle(dst, x, y, radius*0.5, 2, backgroundColor, true)
}

func (r *Renderer) drawEnemy(dst *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID, x, y, radius float32) {
	clr := enemyColors[types.DefaultEnemyType]
	if e, ok := ecs.GetComponent[*components.EnemyComponent](em, id); ok {
		if c, found := enemyColors[e.Type]; found {
			clr = c
		}
	}
	vector.DrawFilledCircle(dst, x, y, radius, clr, true)
	vector.DrawFilledCircle(dst, x, y+radius*0.3, radius*0.35, backgroundColor, true)
}

func (r *Renderer) drawBoss(dst *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID, x, y, radius float32) {
	primary := color.NRGBA{R: 200, G: 50, B: 80, A: 255}
	accent := color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	if b, ok := ecs.GetComponent[*components.BossComponent](em, id); ok && b.Config != nil {
		primary = parseHexColor(b.Config.PrimaryColor, primary)
		accent = parseHexColor(b.Config.AccentColor, accent)
		if b.Phase == types.BossDying {
			accent.A = 120
		}
	}
	vector.DrawFilledCircle(dst, x, y, radius, primary, true)
	vector.StrokeCircle(dst, x, y, radius*0.7, 4, accent, true)
	vector.DrawFilledCircle(dst, x, y, radius*0.25, accent, true)
}

func (r *Renderer) drawCollectible(dst *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID, x, y, radius float32, nowMs float64) {
	clr := collectibleGold
	rare := false
	if c, ok := ecs.GetComponent[*components.CollectibleComponent](em, id); ok {
		rare = c.Type.IsRare()
	}
	if rare {
		clr = collectibleRare
	}
	pulse := float32(1 + 0.15*math.Sin(nowMs/150))
	vector.DrawFilledCircle(dst, x, y, radius*0.7*pulse, clr, true)
	if rare {
		vector.StrokeCircle(dst, x, y, radius*pulse, 1.5, clr, true)
	}
}

// parseHexColor 解析 "#rrggbb"，格式错误时返回 fallback
func parseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
