// verify_droptable 按配置掷大量次掉落表，对比实际频率和理论概率
//
// 用法:
//
//	go run ./cmd/verify_droptable [-config data/game.yaml] [-n 100000] [-seed 1]
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"sort"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/systems"
)

var (
	configPath = flag.String("config", "", "玩法配置文件（默认 data/game.yaml 或内置默认值）")
	rolls      = flag.Int("n", 100000, "掷骰次数")
	seed       = flag.Int64("seed", 1, "随机种子")
	tolerance  = flag.Float64("tolerance", 1.0, "允许的偏差（百分点）")
)

func main() {
	flag.Parse()
	if *rolls <= 0 {
		log.Fatalf("-n must be positive, got %d", *rolls)
	}

	cfg, err := config.LoadGameConfigOrDefault(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	table, err := systems.NewDropTable(cfg.DropTable)
	if err != nil {
		log.Fatalf("掉落表无效: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	counts := make(map[components.ItemKind]int)
	for i := 0; i < *rolls; i++ {
		counts[table.RollRandom(rng)]++
	}

	expected := table.Probabilities()
	kinds := make([]components.ItemKind, 0, len(expected))
	for k := range expected {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Printf("掉落表验证：%d 次，种子 %d\n\n", *rolls, *seed)
	fmt.Printf("%-12s %10s %10s %8s\n", "kind", "expected%", "actual%", "delta")

	failed := false
	for _, k := range kinds {
		actual := float64(counts[k]) * 100 / float64(*rolls)
		delta := actual - expected[k]
		mark := "✓"
		if math.Abs(delta) > *tolerance {
			mark = "✗"
			failed = true
		}
		fmt.Printf("%-12s %10.2f %10.2f %+8.2f %s\n", k, expected[k], actual, delta, mark)
	}

	if failed {
		fmt.Println("\n❌ 部分结果超出允许偏差")
		os.Exit(1)
	}
	fmt.Println("\n✅ 所有结果都在允许偏差内")
}
