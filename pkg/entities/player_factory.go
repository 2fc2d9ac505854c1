package entities

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// Player 玩家
// Y 固定在场地底部，只允许水平移动
type Player struct {
	components.PositionComponent
	components.CollisionComponent

	Shield      bool // 护盾生效中
	HitFlicker  bool // 受击后的短暂无敌（闪烁）
	WeaponCount int  // 每次齐射的子弹数量，>= 1
}

// NewPlayer 创建玩家，水平居中放置在场地底部
//
// 参数:
//   - cfg: 玩家配置
//   - fieldWidth, fieldHeight: 场地尺寸
func NewPlayer(cfg config.PlayerConfig, fieldWidth, fieldHeight float64) *Player {
	p := &Player{
		CollisionComponent: components.CollisionComponent{Width: cfg.Width, Height: cfg.Height},
		WeaponCount:        cfg.StartWeapons,
	}
	p.X = fieldWidth/2 - cfg.Width/2
	p.Pin(fieldWidth, fieldHeight, cfg.BottomMargin)
	return p
}

// Invincible 护盾或受击闪烁期间玩家不会受伤
func (p *Player) Invincible() bool {
	return p.Shield || p.HitFlicker
}

// Bounds 返回玩家的碰撞盒
func (p *Player) Bounds() utils.Rect {
	return utils.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX 玩家水平中心
func (p *Player) CenterX() float64 {
	return p.X + p.Width/2
}

// Pin 把玩家固定到场地底部并把水平位置夹在场地内
// 场地尺寸每帧读取，窗口缩放后通过此方法重新布局
func (p *Player) Pin(fieldWidth, fieldHeight, bottomMargin float64) {
	p.Y = fieldHeight - p.Height - bottomMargin
	p.X = utils.Clamp(p.X, 0, fieldWidth-p.Width)
}

// CenterOn 以 x 为中心放置玩家（指针/触摸输入）
func (p *Player) CenterOn(x, fieldWidth float64) {
	p.X = utils.Clamp(x-p.Width/2, 0, fieldWidth-p.Width)
}

// Nudge 水平移动 dx（方向键输入）
func (p *Player) Nudge(dx, fieldWidth float64) {
	p.X = utils.Clamp(p.X+dx, 0, fieldWidth-p.Width)
}
