package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/decker502/pretzelfall/pkg/embedded"
)

// DefaultSettingsPath 内嵌运行时设置文件路径
const DefaultSettingsPath = "data/settings.toml"

// Settings 运行时设置（窗口、音频、日志、随机种子）
//
// 与 GameConfig 分开：GameConfig 决定玩法，Settings 只影响运行环境。
type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Audio   AudioSettings   `toml:"audio"`
	Logging LoggingSettings `toml:"logging"`
	Game    GameSettings    `toml:"game"`
}

// WindowSettings 窗口设置
type WindowSettings struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

// AudioSettings 音频设置
type AudioSettings struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

// LoggingSettings 日志设置
type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// GameSettings 游戏启动参数
type GameSettings struct {
	ConfigPath string `toml:"config_path"` // 玩法配置路径，空表示内嵌默认
	Seed       int64  `toml:"seed"`        // 0 表示使用当前时间
}

// LoadSettings 加载运行时设置
//
// path 为空或磁盘上不存在时回退到内嵌的 data/settings.toml；
// 两者都没有时返回默认设置。
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if !embedded.IsInitialized() || !embedded.Exists(path) {
			return DefaultSettings(), nil
		}
		data, err = embedded.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings 解析 TOML 内容，未出现的字段保留默认值
func ParseSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings TOML: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", s.Audio.Volume)
	}
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", s.Audio.SampleRate)
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", s.Logging.Format)
	}
	return nil
}

// DefaultSettings 返回默认运行时设置
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title:     "Pretzelfall",
			Width:     WindowWidth,
			Height:    WindowHeight,
			Resizable: true,
		},
		Audio: AudioSettings{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}
