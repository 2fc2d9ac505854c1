package systems

import (
	"fmt"
	"math/rand"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
)

type dropBucket struct {
	kind  components.ItemKind
	below float64
}

// DropTable 敌人被摧毁时的掉落概率表
//
// 掷出 u ∈ [0,100)，落入第一个 u < below 的区间；
// 超过最后一个阈值则不掉落（ItemNone）。
type DropTable struct {
	buckets []dropBucket
}

// NewDropTable 由配置创建掉落表
// 配置已经过 config.GameConfig.Validate 校验时不会返回错误
func NewDropTable(entries []config.DropEntry) (*DropTable, error) {
	t := &DropTable{buckets: make([]dropBucket, 0, len(entries))}
	prev := 0.0
	for i, e := range entries {
		kind, err := components.ParseItemKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("drop table entry %d: %w", i, err)
		}
		if e.Below <= prev {
			return nil, fmt.Errorf("drop table entry %d: threshold %v not above %v", i, e.Below, prev)
		}
		t.buckets = append(t.buckets, dropBucket{kind: kind, below: e.Below})
		prev = e.Below
	}
	return t, nil
}

// Roll 按掷出值 u（0 ≤ u < 100）查表
func (t *DropTable) Roll(u float64) components.ItemKind {
	for _, b := range t.buckets {
		if u < b.below {
			return b.kind
		}
	}
	return components.ItemNone
}

// RollRandom 用随机源掷一次
func (t *DropTable) RollRandom(rng *rand.Rand) components.ItemKind {
	return t.Roll(rng.Float64() * 100)
}

// Probabilities 返回每种结果的理论概率（百分比），含 ItemNone
func (t *DropTable) Probabilities() map[components.ItemKind]float64 {
	out := make(map[components.ItemKind]float64, len(t.buckets)+1)
	prev := 0.0
	for _, b := range t.buckets {
		out[b.kind] += b.below - prev
		prev = b.below
	}
	out[components.ItemNone] = 100 - prev
	return out
}
