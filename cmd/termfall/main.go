// termfall 在终端中运行游戏
//
// 一个字符格对应 10×20 场地单位；方向键移动，空格切换射击，r 重新开始，q/Esc 退出。
//
// 用法:
//
//	go run ./cmd/termfall [-config data/game.yaml] [-seed 42] [-log termfall.log]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/engine"
	"github.com/decker502/pretzelfall/pkg/utils"
)

var (
	settingsPath = flag.String("settings", "", "运行时设置文件（默认 data/settings.toml）")
	configPath   = flag.String("config", "", "玩法配置文件（默认 data/game.yaml 或内置默认值）")
	seed         = flag.Int64("seed", 0, "随机种子，0 表示使用设置或当前时间")
	logPath      = flag.String("log", "", "日志文件，为空时不输出日志（终端被游戏占用）")
	verbose      = flag.Bool("verbose", false, "输出 debug 级别日志（需要 -log）")
	mute         = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if *logPath != "" {
		level := settings.Logging.Level
		if *verbose {
			level = "debug"
		}
		logger, err = utils.NewLogger(level, settings.Logging.Format, *logPath)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	path := *configPath
	if path == "" {
		path = settings.Game.ConfigPath
	}
	cfg, err := config.LoadGameConfigOrDefault(path)
	if err != nil {
		return err
	}

	var opts []engine.Option
	if s := pickSeed(*seed, settings.Game.Seed); s != 0 {
		opts = append(opts, engine.WithSeed(s))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	audioSettings := settings.Audio
	if *mute {
		audioSettings.Enabled = false
	}
	audio := newBeepAudio(audioSettings, logger)
	defer audio.Close()

	term, err := NewTerminal(screen, cfg, audio, logger, opts...)
	if err != nil {
		return err
	}

	loop(screen, term, time.Second/time.Duration(cfg.TicksPerSecond))
	return nil
}

// pickSeed 命令行种子优先于设置文件
func pickSeed(flagSeed, settingsSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return settingsSeed
}

// loop 事件和逻辑帧都在同一个 goroutine 中处理，PollEvent 在单独的 goroutine 中阻塞
func loop(screen tcell.Screen, term *Terminal, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !term.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			term.Step()
			term.Draw()
		}
	}
}
