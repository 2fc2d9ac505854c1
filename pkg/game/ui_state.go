package game

// UIState 展示层需要的只读状态快照
// 所有字段可比较，Engine 用 == 判断是否需要通知 UI 变化
type UIState struct {
	Score       int
	Lives       int
	Multiplier  int
	Phrase      string // 空格保留，未收集显示为 '_'
	Phase       Phase
	WeaponCount int
	Shield      bool
}
