// Package sound 用振荡器合成游戏音效
//
// 音效全部在运行时生成，不依赖音频文件。ebiten 前端把合成结果编码成 PCM
// 字节交给 audio.Player，终端前端直接把 beep.Streamer 交给 speaker。
package sound

import (
	"time"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/gopxl/beep"
)

// Cue 音效类型
type Cue int

const (
	CueExplosion Cue = iota
	CueHit
	CuePickup
	CueLetter
	CueShieldUp
	CueShieldDown
	CuePretzel
	CueShot
	CueWin
	CueGameOver
)

// AllCues 所有音效，用于预先合成
var AllCues = []Cue{
	CueExplosion, CueHit, CuePickup, CueLetter, CueShieldUp,
	CueShieldDown, CuePretzel, CueShot, CueWin, CueGameOver,
}

var cueNames = map[Cue]string{
	CueExplosion:  "explosion",
	CueHit:        "hit",
	CuePickup:     "pickup",
	CueLetter:     "letter",
	CueShieldUp:   "shield_up",
	CueShieldDown: "shield_down",
	CuePretzel:    "pretzel",
	CueShot:       "shot",
	CueWin:        "win",
	CueGameOver:   "game_over",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

// CueFor 返回展示事件对应的音效，没有音效时返回 false
func CueFor(ev game.Event) (Cue, bool) {
	switch ev.Type {
	case game.EventExplosion:
		return CueExplosion, true
	case game.EventPlayerHit:
		return CueHit, true
	case game.EventItemCollected:
		switch ev.Item {
		case components.ItemLetter:
			return CueLetter, true
		case components.ItemPretzel:
			// 胜利音效由终止通知播放
			return 0, false
		}
		return CuePickup, true
	case game.EventShieldUp:
		return CueShieldUp, true
	case game.EventShieldDown:
		return CueShieldDown, true
	case game.EventPretzelReleased:
		return CuePretzel, true
	case game.EventVolley:
		return CueShot, true
	}
	return 0, false
}

// CueForPhase 返回终止阶段对应的音效
func CueForPhase(phase game.Phase) (Cue, bool) {
	switch phase {
	case game.PhaseWin:
		return CueWin, true
	case game.PhaseGameOver:
		return CueGameOver, true
	}
	return 0, false
}

var cueNotes = map[Cue][]note{
	CueExplosion:  {{from: 0, to: 0, d: 250 * time.Millisecond, wave: WaveNoise, gain: 0.6}},
	CueHit:        {{from: 220, to: 80, d: 300 * time.Millisecond, wave: WaveSaw, gain: 0.7}},
	CuePickup:     {{from: 988, to: 988, d: 80 * time.Millisecond, wave: WaveSine, gain: 0.6}, {from: 1319, to: 1319, d: 200 * time.Millisecond, wave: WaveSine, gain: 0.6}},
	CueLetter:     {{from: 880, to: 880, d: 120 * time.Millisecond, wave: WaveSine, gain: 0.7}, {from: 1760, to: 1760, d: 300 * time.Millisecond, wave: WaveSine, gain: 0.5}},
	CueShieldUp:   {{from: 300, to: 900, d: 250 * time.Millisecond, wave: WaveSquare, gain: 0.3}},
	CueShieldDown: {{from: 900, to: 300, d: 250 * time.Millisecond, wave: WaveSquare, gain: 0.3}},
	CuePretzel:    {{from: 523, to: 523, d: 120 * time.Millisecond, wave: WaveSine, gain: 0.6}, {from: 659, to: 659, d: 120 * time.Millisecond, wave: WaveSine, gain: 0.6}, {from: 784, to: 784, d: 240 * time.Millisecond, wave: WaveSine, gain: 0.6}},
	CueShot:       {{from: 1400, to: 900, d: 40 * time.Millisecond, wave: WaveSquare, gain: 0.15}},
	CueWin:        {{from: 523, to: 523, d: 150 * time.Millisecond, wave: WaveSquare, gain: 0.4}, {from: 659, to: 659, d: 150 * time.Millisecond, wave: WaveSquare, gain: 0.4}, {from: 784, to: 784, d: 150 * time.Millisecond, wave: WaveSquare, gain: 0.4}, {from: 1047, to: 1047, d: 450 * time.Millisecond, wave: WaveSquare, gain: 0.4}},
	CueGameOver:   {{from: 392, to: 392, d: 250 * time.Millisecond, wave: WaveSaw, gain: 0.5}, {from: 311, to: 311, d: 250 * time.Millisecond, wave: WaveSaw, gain: 0.5}, {from: 262, to: 130, d: 600 * time.Millisecond, wave: WaveSaw, gain: 0.5}},
}

// Duration 音效总时长
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.d
	}
	return d
}

// Stream 合成一个音效
//
// 参数:
//   - c: 音效类型
//   - rate: 采样率
//   - volume: 主音量 (0.0 ~ 1.0)
//
// 返回:
//   - beep.Streamer: 播放一次后结束；未知音效返回 nil
func Stream(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// EncodePCM 把音效合成为 16 位有符号小端立体声 PCM 字节
func EncodePCM(c Cue, rate beep.SampleRate, volume float64) []byte {
	s := Stream(c, rate, volume)
	if s == nil {
		return nil
	}

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	frame := format.Width()
	out := make([]byte, 0, rate.N(Duration(c))*frame)

	buf := make([][2]float64, 512)
	tmp := make([]byte, frame)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			format.EncodeSigned(tmp, buf[i])
			out = append(out, tmp...)
		}
		if !ok {
			break
		}
	}
	return out
}
