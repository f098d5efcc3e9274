package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 宿主层用于爆炸扩散、闪光淡出和震屏衰减

// EaseOutCubic 开始快、结束慢，f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 比 EaseOutCubic 柔和，f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 已过时间占总时长的比例，限制在 [0, 1]
// total 不大于 0 时视为已完成
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, elapsed/total))
}
