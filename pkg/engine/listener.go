package engine

import (
	"github.com/decker502/pretzelfall/pkg/game"
)

// Listener 展示层回调
//
// 所有回调都在调用 Engine.Tick 的 goroutine 中同步执行，
// 回调内不得再调用 Tick。
type Listener interface {
	// OnTick 每个进行中的逻辑帧结束时调用一次
	OnTick(state RenderState)

	// OnUIChange UI 状态与上次通知不同时调用；Start 时调用一次
	//
	// 比较的是整个 UIState：只有齐射数量、护盾或阶段变化时也会调用
	OnUIChange(state game.UIState)

	// OnTerminal 进入终止阶段时调用，每局恰好一次
	OnTerminal(phase game.Phase, finalScore int)

	// OnEvent 展示事件（爆炸、受击、拾取、护盾等）
	OnEvent(event game.Event)
}

// NopListener 忽略所有回调，可嵌入只关心部分回调的实现
type NopListener struct{}

func (NopListener) OnTick(RenderState)         {}
func (NopListener) OnUIChange(game.UIState)    {}
func (NopListener) OnTerminal(game.Phase, int) {}
func (NopListener) OnEvent(game.Event)         {}

// Listeners 把回调分发给多个监听者
type Listeners []Listener

func (ls Listeners) OnTick(s RenderState) {
	for _, l := range ls {
		l.OnTick(s)
	}
}

func (ls Listeners) OnUIChange(s game.UIState) {
	for _, l := range ls {
		l.OnUIChange(s)
	}
}

func (ls Listeners) OnTerminal(p game.Phase, score int) {
	for _, l := range ls {
		l.OnTerminal(p, score)
	}
}

func (ls Listeners) OnEvent(e game.Event) {
	for _, l := range ls {
		l.OnEvent(e)
	}
}
