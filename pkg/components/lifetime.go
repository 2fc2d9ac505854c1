package components

// LifetimeComponent 管理临时视觉实体的生命周期
// 用于自动清理存在时间超过上限的实体（如爆炸效果）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Advance 累加存在时间并返回是否已过期
func (l *LifetimeComponent) Advance(deltaTime float64) bool {
	l.CurrentLifetime += deltaTime
	if l.CurrentLifetime >= l.MaxLifetime {
		l.IsExpired = true
	}
	return l.IsExpired
}

// Progress 返回 0~1 的生命进度
func (l *LifetimeComponent) Progress() float64 {
	if l.MaxLifetime <= 0 {
		return 1
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p > 1 {
		return 1
	}
	return p
}
