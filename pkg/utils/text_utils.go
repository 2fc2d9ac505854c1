package utils

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var scorePrinter = message.NewPrinter(language.English)

// FormatScore 按千分位格式化分数（如 12,345）
func FormatScore(score int) string {
	return scorePrinter.Sprintf("%d", score)
}

// Hearts 返回生命值的文字表示
// 参数:
//   - lives: 当前生命数（<= 0 返回空串）
//   - heart: 单个生命的符号（如 "♥"）
func Hearts(lives int, heart string) string {
	if lives <= 0 {
		return ""
	}
	return strings.Repeat(heart, lives)
}

// MultiplierLabel 返回倍率提示文字，倍率为 1 时为空
func MultiplierLabel(multiplier int) string {
	if multiplier <= 1 {
		return ""
	}
	return scorePrinter.Sprintf(" (x%d)", multiplier)
}
