package app

import (
	"testing"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/sound"
)

// 这些测试不创建 audio.Context：只有真正播放时才会用到上下文

func TestNewAudioManagerSynthesizesAllCues(t *testing.T) {
	settings := config.DefaultSettings().Audio
	am := NewAudioManager(nil, settings, nil)

	for _, cue := range sound.AllCues {
		data, ok := am.clips[cue]
		if !ok || len(data) == 0 {
			t.Errorf("cue %s not synthesized", cue)
		}
		if len(data)%4 != 0 {
			t.Errorf("cue %s: %d bytes is not whole 16-bit stereo frames", cue, len(data))
		}
	}
	t.Logf("✓ %d cues cached at %d Hz", len(am.clips), settings.SampleRate)
}

func TestAudioManagerMutedPlayIsNoop(t *testing.T) {
	settings := config.DefaultSettings().Audio
	am := NewAudioManager(nil, settings, nil)

	am.SetEnabled(false)
	am.Play(sound.CueExplosion)

	am.SetEnabled(true)
	am.SetVolume(0)
	am.Play(sound.CueExplosion)
}

func TestAudioManagerVolumeClamp(t *testing.T) {
	am := NewAudioManager(nil, config.DefaultSettings().Audio, nil)

	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		am.SetVolume(tt.in)
		if got := am.GetVolume(); got != tt.want {
			t.Errorf("SetVolume(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}
}
