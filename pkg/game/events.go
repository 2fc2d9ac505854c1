package game

import "github.com/decker502/pretzelfall/pkg/components"

// EventType 展示事件类型
//
// 事件只描述已经发生的事情，供展示层播放特效和音效；
// 游戏逻辑不消费事件。
type EventType int

const (
	// EventExplosion 敌人被摧毁，X/Y 为敌人左上角
	EventExplosion EventType = iota

	// EventPlayerHit 玩家受击但仍存活，X/Y 为玩家左上角
	// 展示层在玩家位置绘制爆炸并开始闪烁
	EventPlayerHit

	// EventFlickerEnd 受击无敌结束
	EventFlickerEnd

	// EventItemCollected 拾取道具，Item 为道具类型，Points 为得分
	EventItemCollected

	// EventShieldUp 护盾开启
	EventShieldUp

	// EventShieldDown 护盾结束
	EventShieldDown

	// EventPretzelReleased 椒盐卷饼出现在场地上
	EventPretzelReleased

	// EventVolley 玩家发射一轮齐射，Count 为子弹数量
	EventVolley
)

var eventTypeNames = map[EventType]string{
	EventExplosion:       "explosion",
	EventPlayerHit:       "player_hit",
	EventFlickerEnd:      "flicker_end",
	EventItemCollected:   "item_collected",
	EventShieldUp:        "shield_up",
	EventShieldDown:      "shield_down",
	EventPretzelReleased: "pretzel_released",
	EventVolley:          "volley",
}

// String 返回事件名称，用于日志
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event 一条展示事件
type Event struct {
	Type   EventType
	Tick   uint64
	X, Y   float64
	Item   components.ItemKind
	Points int
	Count  int
}

// EventQueue 单帧内产生的展示事件
// 只在游戏循环所在的 goroutine 中使用，不需要加锁
type EventQueue struct {
	events []Event
}

// NewEventQueue 创建事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 32)}
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len 返回待处理事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain 取出全部事件并清空队列
// 返回的切片归调用方所有
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Reset 丢弃所有待处理事件
func (q *EventQueue) Reset() {
	q.events = q.events[:0]
}
