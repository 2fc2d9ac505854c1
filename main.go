package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/app"
	"github.com/decker502/pretzelfall/pkg/embedded"
)

var (
	verbose      = flag.Bool("verbose", false, "输出 debug 级别日志")
	settingsPath = flag.String("settings", "", "运行时设置文件（默认 data/settings.toml）")
	configPath   = flag.String("config", "", "玩法配置文件（默认 data/game.yaml）")
	seed         = flag.Int64("seed", 0, "随机种子，0 表示使用设置或当前时间")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		SettingsPath: *settingsPath,
		ConfigPath:   *configPath,
		Seed:         *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	logger := gameApp.Logger()
	defer func() { _ = logger.Sync() }()

	window := gameApp.Window()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(gameApp.TPS())

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop stopped", zap.Error(err))
		_ = logger.Sync()
		log.Fatal(err)
	}
}
