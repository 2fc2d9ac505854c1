package utils

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度 ∈ [0, 1]
// 爆炸特效用缓出曲线扩张和淡出

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutQuad 二次方缓出，比 Cubic 更柔和
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
