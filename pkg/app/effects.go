package app

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/fortune/pkg/utils"
)

const (
	explosionMs      = 450.0
	largeExplosionMs = 700.0
	sparkleMs        = 300.0
	shakeDecayMs     = 350.0
	maxShakePixels   = 12.0
)

type burst struct {
	x, y      float64
	radius    float64
	elapsedMs float64
	totalMs   float64
	clr       color.NRGBA
}

// EffectLayer 用几何图形表现爆炸、闪光和震屏
type EffectLayer struct {
	bursts  []burst
	shake   float64 // 0..1
	shakeMs float64
	rng     *rand.Rand
	offsetX float64
	offsetY float64
}

// NewEffectLayer 创建效果层
func NewEffectLayer(seed int64) *EffectLayer {
	return &EffectLayer{rng: rand.New(rand.NewSource(seed))}
}

// Explosion 实现 game.EffectsSink
func (e *EffectLayer) Explosion(x, y float64, large bool) {
	b := burst{x: x, y: y, radius: 28, totalMs: explosionMs, clr: color.NRGBA{R: 255, G: 160, B: 60, A: 255}}
	if large {
		b.radius = 70
		b.totalMs = largeExplosionMs
		b.clr = color.NRGBA{R: 255, G: 90, B: 40, A: 255}
	}
	e.bursts = append(e.bursts, b)
}

// Sparkle 实现 game.EffectsSink
func (e *EffectLayer) Sparkle(x, y float64) {
	e.bursts = append(e.bursts, burst{x: x, y: y, radius: 14, totalMs: sparkleMs, clr: color.NRGBA{R: 255, G: 240, B: 140, A: 255}})
}

// Shake 实现 game.EffectsSink，强度取更大的一次
func (e *EffectLayer) Shake(intensity float64) {
	intensity = max(0, min(1, intensity))
	if intensity >= e.currentShake() {
		e.shake = intensity
		e.shakeMs = 0
	}
}

func (e *EffectLayer) currentShake() float64 {
	return e.shake * (1 - utils.EaseOutQuad(utils.Progress(e.shakeMs, shakeDecayMs)))
}

// Update 推进效果并移除已结束的
func (e *EffectLayer) Update(deltaMs float64) {
	alive := e.bursts[:0]
	for _, b := range e.bursts {
		b.elapsedMs += deltaMs
		if b.elapsedMs < b.totalMs {
			alive = append(alive, b)
		}
	}
	e.bursts = alive

	e.shakeMs += deltaMs
	s := e.currentShake()
	if s <= 0 {
		e.offsetX, e.offsetY = 0, 0
		return
	}
	e.offsetX = (e.rng.Float64()*2 - 1) * maxShakePixels * s
	e.offsetY = (e.rng.Float64()*2 - 1) * maxShakePixels * s
}

// Offset 本帧的震屏偏移
func (e *EffectLayer) Offset() (float64, float64) {
	return e.offsetX, e.offsetY
}

// Active 进行中的爆炸和闪光数
func (e *EffectLayer) Active() int {
	return len(e.bursts)
}

// Draw 绘制全部效果
func (e *EffectLayer) Draw(dst *ebiten.Image, ox, oy float64) {
	for _, b := range e.bursts {
		p := utils.Progress(b.elapsedMs, b.totalMs)
		r := utils.Lerp(4, b.radius, utils.EaseOutCubic(p))
		c := b.clr
		c.A = uint8(255 * (1 - p))
		cx, cy := float32(b.x+ox), float32(b.y+oy)
		vector.DrawFilledCircle(dst, cx, cy, float32(r*0.6), c, true)
		vector.StrokeCircle(dst, cx, cy, float32(r), 2, c, true)
	}
}
