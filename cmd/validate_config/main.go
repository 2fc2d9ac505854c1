// validate_config 校验玩法配置和运行时设置，打印换算后的关键参数
//
// 用法:
//
//	go run ./cmd/validate_config [-config data/game.yaml] [-settings data/settings.toml]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/systems"
)

var (
	configPath   = flag.String("config", config.DefaultGameConfigPath, "玩法配置文件")
	settingsPath = flag.String("settings", config.DefaultSettingsPath, "运行时设置文件")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", *configPath)

	phrase := game.NewPhraseProgress(cfg.Phrase)
	fmt.Printf("   短语 %q，需收集 %d 个字母\n", cfg.Phrase, phrase.Remaining())
	fmt.Printf("   敌人每 %d 帧生成，每 %d 帧提速 %.2f\n",
		cfg.Ticks(cfg.Enemy.SpawnInterval), cfg.Ticks(cfg.Enemy.SpeedRampInterval), cfg.Enemy.SpeedRampIncrement)
	fmt.Printf("   每 %d 帧射击一次，字母每 %d 帧一次\n",
		cfg.Ticks(cfg.Projectile.FireInterval), cfg.Ticks(cfg.Letters.SpawnInterval))

	table, err := systems.NewDropTable(cfg.DropTable)
	if err != nil {
		fmt.Printf("❌ 掉落表无效: %v\n", err)
		os.Exit(1)
	}
	probs := table.Probabilities()
	for kind := components.ItemNone; kind <= components.ItemPretzel; kind++ {
		if p, ok := probs[kind]; ok {
			fmt.Printf("   掉落 %-10s %6.2f%%\n", kind, p)
		}
	}

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", *settingsPath)
	fmt.Printf("   窗口 %dx%d，音效 %v（音量 %.2f，%d Hz），日志 %s/%s\n",
		settings.Window.Width, settings.Window.Height,
		settings.Audio.Enabled, settings.Audio.Volume, settings.Audio.SampleRate,
		settings.Logging.Level, settings.Logging.Format)
}
