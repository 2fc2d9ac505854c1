// verify_gameplay 无界面运行引擎，由自动驾驶玩家完成若干局并打印统计
//
// 自动驾驶始终开火，优先追逐最低的字母和椒盐卷饼，其次对准最低的敌人。
//
// 用法:
//
//	go run ./cmd/verify_gameplay [-games 5] [-ticks 36000] [-seed 1] [-verbose]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/engine"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/utils"
)

var (
	configPath = flag.String("config", "", "玩法配置文件（默认 data/game.yaml 或内置默认值）")
	games      = flag.Int("games", 5, "对局数量")
	maxTicks   = flag.Int("ticks", 36000, "每局最多运行的帧数")
	seed       = flag.Int64("seed", 1, "第一局的随机种子，之后每局加一")
	width      = flag.Float64("width", 480, "场地宽度")
	height     = flag.Float64("height", 720, "场地高度")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// stats 一局的统计
type stats struct {
	engine.NopListener

	phase      game.Phase
	finalScore int
	state      engine.RenderState
	ui         game.UIState

	explosions int
	hits       int
	pickups    map[components.ItemKind]int
	pretzel    bool
}

func (s *stats) OnTick(state engine.RenderState) { s.state = state }
func (s *stats) OnUIChange(ui game.UIState)      { s.ui = ui }

func (s *stats) OnEvent(ev game.Event) {
	switch ev.Type {
	case game.EventExplosion:
		s.explosions++
	case game.EventPlayerHit:
		s.hits++
	case game.EventItemCollected:
		s.pickups[ev.Item]++
	case game.EventPretzelReleased:
		s.pretzel = true
	}
}

func (s *stats) OnTerminal(phase game.Phase, score int) {
	s.phase = phase
	s.finalScore = score
}

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = utils.NewLogger("debug", "console")
		if err != nil {
			log.Fatalf("创建日志失败: %v", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadGameConfigOrDefault(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	wins := 0
	for i := 0; i < *games; i++ {
		s, ticks, err := play(cfg, *seed+int64(i), logger)
		if err != nil {
			log.Fatalf("对局 %d 失败: %v", i+1, err)
		}
		if s.phase == game.PhaseWin {
			wins++
		}
		report(i+1, s, ticks)
	}

	fmt.Printf("\n共 %d 局，胜利 %d 局\n", *games, wins)
	if wins == 0 && *games > 0 {
		os.Exit(1)
	}
}

// play 运行一局直到终局或达到帧数上限
func play(cfg *config.GameConfig, seed int64, logger *zap.Logger) (*stats, uint64, error) {
	s := &stats{pickups: make(map[components.ItemKind]int)}
	eng, err := engine.New(cfg, engine.FixedPlayField{W: *width, H: *height},
		engine.WithSeed(seed),
		engine.WithLogger(logger),
		engine.WithListener(s))
	if err != nil {
		return nil, 0, err
	}
	eng.Start()
	eng.SetShooting(true)

	for t := 0; t < *maxTicks && !eng.Phase().IsTerminal(); t++ {
		if x, ok := steer(s.state); ok {
			eng.SetHorizontalTarget(x)
		}
		eng.Tick()
	}
	return s, eng.Ticks(), nil
}

// steer 选择自动驾驶的目标 x
func steer(state engine.RenderState) (float64, bool) {
	var best *utils.Rect
	for i := range state.Items {
		it := &state.Items[i]
		if it.Kind != components.ItemLetter && it.Kind != components.ItemPretzel {
			continue
		}
		if best == nil || it.Y > best.Y {
			best = &it.Rect
		}
	}
	if best == nil {
		for i := range state.Enemies {
			if best == nil || state.Enemies[i].Y > best.Y {
				best = &state.Enemies[i]
			}
		}
	}
	if best == nil {
		return 0, false
	}
	return best.X + best.W/2, true
}

func report(n int, s *stats, ticks uint64) {
	result := "⏱ 超时"
	switch s.phase {
	case game.PhaseWin:
		result = "✅ 胜利"
	case game.PhaseGameOver:
		result = "❌ 失败"
	}
	score := s.finalScore
	if !s.phase.IsTerminal() {
		score = s.ui.Score
	}

	fmt.Printf("对局 %d: %s  帧数=%d  分数=%s  击落=%d  受击=%d  短语=%q  卷饼出现=%v\n",
		n, result, ticks, utils.FormatScore(score), s.explosions, s.hits, s.ui.Phrase, s.pretzel)
	for k := components.ItemLife; k <= components.ItemPretzel; k++ {
		if c := s.pickups[k]; c > 0 {
			fmt.Printf("    拾取 %-10s %d\n", k, c)
		}
	}
}
