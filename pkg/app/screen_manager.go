package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen 一个可独占更新和绘制的画面
type Screen interface {
	Update(deltaMs float64)
	Draw(screen *ebiten.Image)
}

// ScreenFactory 创建新一局的画面，返回 nil 表示创建失败
type ScreenFactory func() Screen

// ScreenManager 同一时刻只有一个画面被更新和绘制
type ScreenManager struct {
	current Screen
	factory ScreenFactory
}

// NewScreenManager 创建没有活动画面的管理器，用 SwitchTo 或 Restart 设置初始画面
func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

// SetFactory 设置新一局画面的工厂函数
func (sm *ScreenManager) SetFactory(factory ScreenFactory) {
	sm.factory = factory
}

// SwitchTo 切换活动画面
func (sm *ScreenManager) SwitchTo(screen Screen) {
	sm.current = screen
}

// Current 当前活动画面，可能为 nil
func (sm *ScreenManager) Current() Screen {
	return sm.current
}

// Restart 用工厂函数创建新画面并切换过去
func (sm *ScreenManager) Restart() bool {
	if sm.factory == nil {
		log.Printf("[ScreenManager] Error: screen factory not set")
		return false
	}
	next := sm.factory()
	if next == nil {
		log.Printf("[ScreenManager] Error: factory returned no screen")
		return false
	}
	sm.SwitchTo(next)
	log.Printf("[ScreenManager] Started new run")
	return true
}

// Update 更新活动画面
func (sm *ScreenManager) Update(deltaMs float64) {
	if sm.current != nil {
		sm.current.Update(deltaMs)
	}
}

// Draw 绘制活动画面
func (sm *ScreenManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
