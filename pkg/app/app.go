// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，桌面端（main.go）和移动端（mobile/）共用。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/engine"
	"github.com/decker502/pretzelfall/pkg/scenes"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 输出 debug 级别日志
	Verbose bool
	// SettingsPath 运行时设置文件，空表示 data/settings.toml
	SettingsPath string
	// ConfigPath 玩法配置文件，空表示使用设置中的路径
	ConfigPath string
	// Seed 随机种子，0 表示使用设置中的种子
	Seed int64
}

// App 游戏应用，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *config.Settings
	gameConfig   *config.GameConfig
	logger       *zap.Logger

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化内嵌数据。
func NewApp(cfg Config) (*App, error) {
	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	level := settings.Logging.Level
	if cfg.Verbose {
		level = "debug"
	}
	logger, err := utils.NewLogger(level, settings.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = settings.Game.ConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	var cues scenes.CuePlayer
	if settings.Audio.Enabled {
		cues = NewAudioManager(audio.NewContext(settings.Audio.SampleRate), settings.Audio, logger)
	}

	var opts []engine.Option
	seed := cfg.Seed
	if seed == 0 {
		seed = settings.Game.Seed
	}
	if seed != 0 {
		opts = append(opts, engine.WithSeed(seed))
		logger.Info("using fixed seed", zap.Int64("seed", seed))
	}

	gameScene, err := scenes.NewGameScene(gameConfig, settings.Window.Width, settings.Window.Height, cues, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager(logger)
	sceneManager.SwitchTo(gameScene)

	logger.Info("app initialized",
		zap.String("title", settings.Window.Title),
		zap.Int("width", settings.Window.Width),
		zap.Int("height", settings.Window.Height),
		zap.Bool("audio", settings.Audio.Enabled))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		gameConfig:   gameConfig,
		logger:       logger.Named("App"),
	}, nil
}

// Update 更新游戏逻辑，每个 tick 调用一次
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.logger.Debug("exit fullscreen, window size reset pending")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口，全屏时用黑色填充两侧
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 可缩放窗口下逻辑尺寸跟随窗口，场地随之变化；否则固定为设置中的尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := a.settings.Window.Width, a.settings.Window.Height
	if a.settings.Window.Resizable || utils.IsMobile() {
		width, height = outsideWidth, outsideHeight
	}
	a.sceneManager.Resize(width, height)
	return width, height
}

// Window 窗口设置
func (a *App) Window() config.WindowSettings {
	return a.settings.Window
}

// TPS 每秒逻辑帧数
func (a *App) TPS() int {
	return a.gameConfig.TicksPerSecond
}

// Logger 应用日志器，退出前调用 Sync
func (a *App) Logger() *zap.Logger {
	return a.logger
}
