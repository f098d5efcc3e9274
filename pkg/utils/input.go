// Package utils 提供宿主层的通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchDeadZone 触摸点距飞船小于该距离时不再移动（像素）
const TouchDeadZone = 12.0

// KeyAxis 两个方向键合成一个轴，同时按下时抵消
func KeyAxis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return 0
}

// SteerToward 从 (px, py) 指向 (tx, ty) 的单位方向，死区内返回 (0, 0)
func SteerToward(px, py, tx, ty, deadZone float64) (float64, float64) {
	dx, dy := tx-px, ty-py
	d := math.Hypot(dx, dy)
	if d <= deadZone || d == 0 {
		return 0, 0
	}
	return dx / d, dy / d
}

// ReadKeyboardSteering 方向键或 WASD
func ReadKeyboardSteering() (float64, float64) {
	x := KeyAxis(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	)
	y := KeyAxis(
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	)
	return x, y
}

// ReadTouchSteering 第一个活动触摸点相对飞船的方向
// 没有触摸时 ok 为 false
func ReadTouchSteering(px, py float64) (x, y float64, ok bool) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 0 {
		return 0, 0, false
	}
	tx, ty := ebiten.TouchPosition(ids[0])
	x, y = SteerToward(px, py, float64(tx), float64(ty), TouchDeadZone)
	return x, y, true
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}
