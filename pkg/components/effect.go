package components

// EffectKind 限时效果类型
type EffectKind int

const (
	EffectSlow       EffectKind = iota // 敌人减速
	EffectMultiplier                   // 分数倍率
	EffectShield                       // 护盾无敌
	EffectHitFlicker                   // 受击后的短暂无敌（闪烁）
)

// String 返回效果名称（用于日志）
func (k EffectKind) String() string {
	switch k {
	case EffectSlow:
		return "slow"
	case EffectMultiplier:
		return "multiplier"
	case EffectShield:
		return "shield"
	case EffectHitFlicker:
		return "hit_flicker"
	default:
		return "unknown"
	}
}

// ExpiringEffect 限时效果记录
// 每种效果同一时间只有一条记录，重复触发只会重置到期时间
type ExpiringEffect struct {
	Kind          EffectKind
	StartedAtTick uint64 // 本次窗口开始的 tick
	ExpiresAtTick uint64 // 到期 tick（到达该 tick 时失效）
}

// Expired 检查在给定 tick 时效果是否已到期
func (e ExpiringEffect) Expired(tick uint64) bool {
	return tick >= e.ExpiresAtTick
}
