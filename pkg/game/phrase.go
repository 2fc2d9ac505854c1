package game

import (
	"math/rand"

	"github.com/decker502/pretzelfall/pkg/config"
)

// PlaceholderRune 未收集字母在短语显示中的占位符
const PlaceholderRune = '_'

// PhraseProgress 短语收集进度
//
// 每个字符对应一个收集标记，空格永远不可收集。
// 当所有非空格字符都已收集时短语完成。
type PhraseProgress struct {
	runes     []rune
	collected []bool
	remaining int // 剩余未收集的非空格字符数
}

// NewPhraseProgress 创建短语进度，所有字母未收集
func NewPhraseProgress(phrase string) *PhraseProgress {
	p := &PhraseProgress{runes: []rune(phrase)}
	p.collected = make([]bool, len(p.runes))
	p.Reset()
	return p
}

// Len 返回短语的字符数（含空格）
func (p *PhraseProgress) Len() int {
	return len(p.runes)
}

// Rune 返回第 index 个字符
func (p *PhraseProgress) Rune(index int) rune {
	return p.runes[index]
}

// Collectible 第 index 个字符是否可收集（在范围内、不是空格、尚未收集）
func (p *PhraseProgress) Collectible(index int) bool {
	return index >= 0 && index < len(p.runes) && p.runes[index] != ' ' && !p.collected[index]
}

// IsCollected 第 index 个字符是否已收集
func (p *PhraseProgress) IsCollected(index int) bool {
	return index >= 0 && index < len(p.collected) && p.collected[index]
}

// Collect 标记第 index 个字符为已收集
// 重复收集、空格和越界下标都是无操作
//
// 返回: 是否为新收集
func (p *PhraseProgress) Collect(index int) bool {
	if !p.Collectible(index) {
		return false
	}
	p.collected[index] = true
	p.remaining--
	return true
}

// IsComplete 所有非空格字符是否都已收集
func (p *PhraseProgress) IsComplete() bool {
	return p.remaining == 0
}

// Remaining 剩余未收集的字符数
func (p *PhraseProgress) Remaining() int {
	return p.remaining
}

// Uncollected 按下标升序返回所有未收集的非空格字符下标
func (p *PhraseProgress) Uncollected() []int {
	out := make([]int, 0, p.remaining)
	for i := range p.runes {
		if p.Collectible(i) {
			out = append(out, i)
		}
	}
	return out
}

// NextLetter 按选择策略挑选下一个要掉落的字母
//
// 参数:
//   - policy: LetterSequential 取最小下标，LetterRandom 均匀随机
//   - rng: 随机源，仅 LetterRandom 使用
//
// 返回: 字母下标；短语已完成时 ok 为 false
func (p *PhraseProgress) NextLetter(policy config.LetterSelection, rng *rand.Rand) (index int, ok bool) {
	candidates := p.Uncollected()
	if len(candidates) == 0 {
		return 0, false
	}
	if policy == config.LetterRandom {
		return candidates[rng.Intn(len(candidates))], true
	}
	return candidates[0], true
}

// Display 返回短语的显示形式
// 空格保留，已收集的显示原字符，未收集的显示占位符
func (p *PhraseProgress) Display() string {
	out := make([]rune, len(p.runes))
	for i, r := range p.runes {
		switch {
		case r == ' ':
			out[i] = ' '
		case p.collected[i]:
			out[i] = r
		default:
			out[i] = PlaceholderRune
		}
	}
	return string(out)
}

// Reset 清空收集进度
func (p *PhraseProgress) Reset() {
	p.remaining = 0
	for i, r := range p.runes {
		p.collected[i] = false
		if r != ' ' {
			p.remaining++
		}
	}
}
