package main

import "math"

const (
	// cellWidth / cellHeight 一个终端字符格对应的场地单位
	cellWidth  = 10.0
	cellHeight = 20.0

	// hudRows 顶部 HUD 占用的行数
	hudRows = 2
)

// fieldSizeFor 终端尺寸对应的场地尺寸（扣除 HUD 行）
func fieldSizeFor(cols, rows int) (float64, float64) {
	playRows := rows - hudRows
	if playRows < 1 {
		playRows = 1
	}
	return float64(cols) * cellWidth, float64(playRows) * cellHeight
}

// cellOf 场地坐标所在的字符格（已加上 HUD 偏移）
func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y/cellHeight)) + hudRows
}

// spanOf 水平区间 [x, x+w) 覆盖的列
func spanOf(x, w float64) (int, int) {
	first := int(math.Floor(x / cellWidth))
	last := int(math.Ceil((x+w)/cellWidth)) - 1
	if last < first {
		last = first
	}
	return first, last
}
