package app

import (
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/sound"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// AudioManager 音效管理器
//
// 启动时把所有音效合成为 PCM 缓存，播放时为每次触发创建一个短生命周期的
// audio.Player，同一音效可以重叠播放。
type AudioManager struct {
	context *audio.Context
	clips   map[sound.Cue][]byte // 音效 -> 16 位立体声 PCM
	volume  float64
	enabled bool
	logger  *zap.Logger
}

// NewAudioManager 创建音效管理器并预先合成所有音效
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率必须与 settings.SampleRate 一致
//   - settings: 音频设置（开关、音量、采样率）
//   - logger: 日志器，可为 nil
func NewAudioManager(ctx *audio.Context, settings config.AudioSettings, logger *zap.Logger) *AudioManager {
	am := &AudioManager{
		context: ctx,
		clips:   make(map[sound.Cue][]byte, len(sound.AllCues)),
		volume:  settings.Volume,
		enabled: settings.Enabled,
		logger:  utils.OrNop(logger).Named("AudioManager"),
	}

	rate := beep.SampleRate(settings.SampleRate)
	total := 0
	for _, cue := range sound.AllCues {
		data := sound.EncodePCM(cue, rate, 1)
		am.clips[cue] = data
		total += len(data)
	}
	am.logger.Debug("sounds synthesized",
		zap.Int("cues", len(am.clips)),
		zap.Int("bytes", total),
		zap.Int("sampleRate", settings.SampleRate))
	return am
}

// Play 播放一个音效，音效关闭或音量为 0 时忽略
func (am *AudioManager) Play(cue sound.Cue) {
	if !am.enabled || am.volume <= 0 {
		return
	}
	data, ok := am.clips[cue]
	if !ok {
		am.logger.Warn("sound not found", zap.Stringer("cue", cue))
		return
	}

	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetVolume 设置音量 (0.0 ~ 1.0)，影响之后播放的音效
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = utils.Clamp(volume, 0, 1)
}

// GetVolume 当前音量
func (am *AudioManager) GetVolume() float64 {
	return am.volume
}

// SetEnabled 打开或关闭音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
