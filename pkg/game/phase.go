package game

// Phase 一局游戏所处的阶段
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseGameOver 生命耗尽
	PhaseGameOver
	// PhaseWin 拾取椒盐卷饼
	PhaseWin
)

var phaseNames = map[Phase]string{
	PhasePlaying:  "playing",
	PhaseGameOver: "game_over",
	PhaseWin:      "win",
}

// String 返回阶段名称，用于日志
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal 终止阶段不可离开，只能通过 Reset 重新开始
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOver || p == PhaseWin
}
