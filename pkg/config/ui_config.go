package config

// HUD 与商店面板的布局常量（屏幕坐标，与游戏场一致，800x600）

const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 800
	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 600
	// WindowTitle 窗口标题
	WindowTitle = "Fortune Strike"
)

const (
	// HUDMarginX HUD 文本距屏幕左右边缘的距离
	HUDMarginX = 10.0
	// HUDLineHeight basicfont 7x13 的行高
	HUDLineHeight = 16.0
	// HUDTopY 第一行的 Y 坐标
	HUDTopY = 8.0

	// HealthBarWidth 玩家生命条宽度
	HealthBarWidth = 120.0
	// HealthBarHeight 玩家生命条高度
	HealthBarHeight = 8.0

	// BossBarWidth Boss 生命条宽度（居中显示在顶部）
	BossBarWidth = 400.0
	// BossBarHeight Boss 生命条高度
	BossBarHeight = 10.0
	// BossBarY Boss 生命条 Y 坐标
	BossBarY = 40.0
)

// ShopPanelPosition 商店面板左上角
type ShopPanelPosition struct {
	X float64
	Y float64
}

// ShopPanel 商店面板布局
var ShopPanel = ShopPanelPosition{X: 250.0, Y: 180.0}

const (
	// ShopPanelWidth 商店面板宽度
	ShopPanelWidth = 300.0
	// ShopRowHeight 每个升级项的行高
	ShopRowHeight = 28.0
	// ShopHeaderHeight 标题和货币行占用的高度
	ShopHeaderHeight = 48.0
)

// ShopRowPosition 第 index 个升级项文本的位置
// 索引越界时返回 (0, 0)
func ShopRowPosition(index, rows int) (x, y float64) {
	if index < 0 || index >= rows {
		return 0, 0
	}
	return ShopPanel.X + HUDMarginX, ShopPanel.Y + ShopHeaderHeight + float64(index)*ShopRowHeight
}

// ShopPanelHeight rows 个升级项时面板的总高度
func ShopPanelHeight(rows int) float64 {
	return ShopHeaderHeight + float64(max(rows, 0))*ShopRowHeight + HUDLineHeight*2
}
