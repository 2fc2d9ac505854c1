package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/sound"
)

// beepAudio 通过 beep speaker 播放合成音效
type beepAudio struct {
	rate   beep.SampleRate
	volume float64
}

// newBeepAudio 初始化扬声器，失败时返回 nil，游戏照常运行
func newBeepAudio(settings config.AudioSettings, logger *zap.Logger) *beepAudio {
	if !settings.Enabled {
		return nil
	}
	rate := beep.SampleRate(settings.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		logger.Warn("audio initialization failed", zap.Error(err))
		return nil
	}
	return &beepAudio{rate: rate, volume: settings.Volume}
}

// Play 播放一个音效
func (a *beepAudio) Play(cue sound.Cue) {
	if a == nil {
		return
	}
	if s := sound.Stream(cue, a.rate, a.volume); s != nil {
		speaker.Play(s)
	}
}

func (a *beepAudio) Close() {
	if a != nil {
		speaker.Close()
	}
}
