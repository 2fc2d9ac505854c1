package game

import (
	"math"

	"github.com/decker502/pretzelfall/pkg/config"
)

// Progression 一局游戏的数值进度
//
// 由 Engine 独占持有，没有全局实例。
// 分数只增不减；生命只在受击时减少；倍率取值为 1 或配置的倍率值。
type Progression struct {
	cfg *config.GameConfig

	Score      int
	Lives      int
	Multiplier int

	// BaseSpeed 敌人基准速度，随时间提速
	BaseSpeed float64
	// EnemySpeed 敌人当前实际速度，减速期间低于基准速度
	EnemySpeed float64
	// Slowed 减速效果是否生效中
	Slowed bool

	slowRestore float64 // rampPersistsThroughSlow=false 时减速结束恢复的速度

	Phase Phase
	Tick  uint64
}

// NewProgression 按配置创建初始进度
func NewProgression(cfg *config.GameConfig) *Progression {
	p := &Progression{cfg: cfg}
	p.Reset()
	return p
}

// Reset 恢复为初始进度
func (p *Progression) Reset() {
	p.Score = 0
	p.Lives = p.cfg.Player.StartLives
	p.Multiplier = 1
	p.BaseSpeed = p.cfg.Enemy.StartSpeed
	p.EnemySpeed = p.cfg.Enemy.StartSpeed
	p.Slowed = false
	p.slowRestore = 0
	p.Phase = PhasePlaying
	p.Tick = 0
}

// IsPlaying 是否处于进行阶段
func (p *Progression) IsPlaying() bool {
	return p.Phase == PhasePlaying
}

// AddScore 按当前倍率加分
//
// 返回: 实际增加的分数
func (p *Progression) AddScore(base int) int {
	gained := base * p.Multiplier
	p.Score += gained
	return gained
}

// GainLife 增加一条命，没有上限
func (p *Progression) GainLife() {
	p.Lives++
}

// LoseLife 扣除一条命，生命耗尽时进入 PhaseGameOver
//
// 返回: 是否因此进入终止阶段
func (p *Progression) LoseLife() bool {
	p.Lives--
	if p.Lives <= 0 {
		p.Phase = PhaseGameOver
		return true
	}
	return false
}

// Win 进入 PhaseWin
func (p *Progression) Win() {
	p.Phase = PhaseWin
}

// SetMultiplier 设置倍率
func (p *Progression) SetMultiplier(m int) {
	p.Multiplier = m
}

// ResetMultiplier 倍率恢复为 1
func (p *Progression) ResetMultiplier() {
	p.Multiplier = 1
}

// RampSpeed 基准速度提升一档
// 减速期间实际速度不变，减速结束后恢复为提速后的基准速度
func (p *Progression) RampSpeed() {
	inc := p.cfg.Enemy.SpeedRampIncrement
	p.BaseSpeed += inc
	switch {
	case !p.Slowed:
		p.EnemySpeed = p.BaseSpeed
	case !p.cfg.Effects.RampPersistsThroughSlow:
		// 旧行为：提速直接叠加在减速后的速度上
		p.EnemySpeed += inc
	}
}

// ApplySlow 敌人速度减半（不低于配置的下限）
// 重复减速时对基准速度减半，而不是对已减半的速度再减半
func (p *Progression) ApplySlow() {
	if !p.Slowed {
		p.slowRestore = p.EnemySpeed
	}
	p.Slowed = true
	p.EnemySpeed = math.Max(p.cfg.Enemy.MinSlowSpeed, p.BaseSpeed/2)
}

// RestoreSpeed 减速结束
//
// rampPersistsThroughSlow=true 时恢复为当前基准速度；
// 为 false 时恢复为第一次减速开始时的速度，期间的提速丢失。
func (p *Progression) RestoreSpeed() {
	if !p.Slowed {
		return
	}
	p.Slowed = false
	if !p.cfg.Effects.RampPersistsThroughSlow {
		p.BaseSpeed = p.slowRestore
	}
	p.EnemySpeed = p.BaseSpeed
}
