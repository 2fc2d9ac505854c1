package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内嵌游戏调参文件路径
const DefaultGameConfigPath = "data/game.yaml"

// LetterSelection 字母掉落的选择策略
type LetterSelection string

const (
	// LetterSequential 总是掉落下标最小的未收集字母
	LetterSequential LetterSelection = "sequential"
	// LetterRandom 在未收集字母中均匀随机选择
	LetterRandom LetterSelection = "random"
)

// PhraseCompletion 短语集齐后字母计时器的行为
type PhraseCompletion string

const (
	// CompletionPretzel 集齐后不再掉落字母，每次计时器触发只在场上没有椒盐卷饼时补发一个
	CompletionPretzel PhraseCompletion = "pretzel"
	// CompletionCycle 集齐后补发椒盐卷饼、清空收集进度并重新开始一轮
	CompletionCycle PhraseCompletion = "cycle"
)

// GameConfig 游戏调参配置
//
// 所有时间类字段以秒为单位，由 Ticks() 换算为逻辑帧数。
// 所有速度类字段以"单位/帧"为单位。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// TicksPerSecond 每秒逻辑帧数
	TicksPerSecond int `yaml:"ticksPerSecond"`

	// Phrase 需要收集的短语，空格不可收集
	Phrase string `yaml:"phrase"`

	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Items      ItemsConfig      `yaml:"items"`
	Letters    LettersConfig    `yaml:"letters"`
	Pretzel    SizeConfig       `yaml:"pretzel"`
	Effects    EffectsConfig    `yaml:"effects"`
	Scoring    ScoringConfig    `yaml:"scoring"`

	// DropTable 掉落概率表，按 Below 升序排列
	// 掷出 u ∈ [0,100)，落入第一个 u < Below 的条目；全部不满足则不掉落
	DropTable []DropEntry `yaml:"dropTable"`
}

// SizeConfig 实体尺寸
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	SizeConfig `yaml:",inline"`

	BottomMargin       float64 `yaml:"bottomMargin"`       // 玩家底边距离场地底部的距离
	KeyboardStep       float64 `yaml:"keyboardStep"`       // 方向键每帧移动距离
	StartLives         int     `yaml:"startLives"`         // 初始生命
	StartWeapons       int     `yaml:"startWeapons"`       // 初始齐射数量
	MaxWeapons         int     `yaml:"maxWeapons"`         // 齐射数量上限
	HitInvulnerability float64 `yaml:"hitInvulnerability"` // 受击后无敌时长（秒）
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	SizeConfig `yaml:",inline"`

	StartSpeed         float64 `yaml:"startSpeed"`         // 初始下落速度
	MinSlowSpeed       float64 `yaml:"minSlowSpeed"`       // 减速效果的速度下限
	SpawnInterval      float64 `yaml:"spawnInterval"`      // 生成间隔（秒）
	SpeedRampInterval  float64 `yaml:"speedRampInterval"`  // 提速间隔（秒）
	SpeedRampIncrement float64 `yaml:"speedRampIncrement"` // 每次提速增量
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	SizeConfig `yaml:",inline"`

	Speed        float64 `yaml:"speed"`        // 上升速度
	Spread       float64 `yaml:"spread"`       // 齐射时相邻子弹的水平间距
	FireInterval float64 `yaml:"fireInterval"` // 自动射击间隔（秒）
}

// ItemsConfig 掉落道具配置
type ItemsConfig struct {
	SizeConfig `yaml:",inline"`

	FallSpeed float64 `yaml:"fallSpeed"` // 道具下落速度，与敌人速度无关
}

// LettersConfig 字母道具配置
type LettersConfig struct {
	SizeConfig `yaml:",inline"`

	SpawnInterval float64          `yaml:"spawnInterval"` // 字母计时器间隔（秒）
	Selection     LetterSelection  `yaml:"selection"`
	Completion    PhraseCompletion `yaml:"completion"`
}

// EffectsConfig 限时效果配置
type EffectsConfig struct {
	Duration        float64 `yaml:"duration"`        // 减速/倍率/护盾持续时间（秒）
	MultiplierValue int     `yaml:"multiplierValue"` // 倍率道具生效时的倍率

	// RampPersistsThroughSlow 为 true 时，减速期间的提速在减速结束后保留；
	// 为 false 时，减速结束恢复为第一次减速开始时的速度
	RampPersistsThroughSlow bool `yaml:"rampPersistsThroughSlow"`
}

// ScoringConfig 基础分值，实际得分 = 基础分值 × 当前倍率
type ScoringConfig struct {
	EnemyKill  int `yaml:"enemyKill"`
	Life       int `yaml:"life"`
	Points     int `yaml:"points"`
	Slow       int `yaml:"slow"`
	Multiplier int `yaml:"multiplier"`
	Weapon     int `yaml:"weapon"`
	Shield     int `yaml:"shield"`
	Letter     int `yaml:"letter"`
	Pretzel    int `yaml:"pretzel"`
}

// DropEntry 掉落表条目
type DropEntry struct {
	Kind  string  `yaml:"kind"`
	Below float64 `yaml:"below"`
}

// ScoreFor 返回某种道具的基础分值
func (s ScoringConfig) ScoreFor(kind components.ItemKind) int {
	switch kind {
	case components.ItemLife:
		return s.Life
	case components.ItemPoints:
		return s.Points
	case components.ItemSlow:
		return s.Slow
	case components.ItemMultiplier:
		return s.Multiplier
	case components.ItemWeapon:
		return s.Weapon
	case components.ItemShield:
		return s.Shield
	case components.ItemLetter:
		return s.Letter
	case components.ItemPretzel:
		return s.Pretzel
	default:
		return 0
	}
}

// DefaultGameConfig 返回默认调参（与 data/game.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TicksPerSecond: 60,
		Phrase:         "Happy Birthday to samsom",
		Player: PlayerConfig{
			SizeConfig:         SizeConfig{Width: 50, Height: 50},
			BottomMargin:       10,
			KeyboardStep:       10,
			StartLives:         5,
			StartWeapons:       1,
			MaxWeapons:         20,
			HitInvulnerability: 2,
		},
		Enemy: EnemyConfig{
			SizeConfig:         SizeConfig{Width: 40, Height: 40},
			StartSpeed:         2,
			MinSlowSpeed:       1,
			SpawnInterval:      1,
			SpeedRampInterval:  5,
			SpeedRampIncrement: 0.2,
		},
		Projectile: ProjectileConfig{
			SizeConfig:   SizeConfig{Width: 20, Height: 20},
			Speed:        10,
			Spread:       15,
			FireInterval: 0.3,
		},
		Items: ItemsConfig{
			SizeConfig: SizeConfig{Width: 30, Height: 30},
			FallSpeed:  2,
		},
		Letters: LettersConfig{
			SizeConfig:    SizeConfig{Width: 50, Height: 50},
			SpawnInterval: 10,
			Selection:     LetterSequential,
			Completion:    CompletionPretzel,
		},
		Pretzel: SizeConfig{Width: 30, Height: 40},
		Effects: EffectsConfig{
			Duration:                10,
			MultiplierValue:         3,
			RampPersistsThroughSlow: true,
		},
		Scoring: ScoringConfig{
			EnemyKill:  5,
			Life:       5,
			Points:     15,
			Slow:       5,
			Multiplier: 5,
			Weapon:     5,
			Shield:     5,
			Letter:     20,
			Pretzel:    100,
		},
		DropTable: []DropEntry{
			{Kind: "life", Below: 1},
			{Kind: "points", Below: 25},
			{Kind: "slow", Below: 40},
			{Kind: "multiplier", Below: 50},
			{Kind: "weapon", Below: 65},
			{Kind: "shield", Below: 80},
		},
	}
}

// Ticks 将秒数换算为逻辑帧数（四舍五入，至少 1 帧）
func (c *GameConfig) Ticks(seconds float64) uint64 {
	n := math.Round(seconds * float64(c.TicksPerSecond))
	if n < 1 {
		return 1
	}
	return uint64(n)
}

// LoadGameConfig 加载游戏调参配置
//
// 优先读取磁盘上的 path；磁盘上不存在时回退到内嵌资源。
// path 为空时直接使用内嵌的 data/game.yaml。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 在默认值之上覆盖并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadGameConfig(path string) (*GameConfig, error) {
	if path == "" {
		path = DefaultGameConfigPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("game config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameConfigOrDefault 与 LoadGameConfig 相同，但 path 为空且磁盘和内嵌数据中
// 都没有默认配置文件时返回默认配置（命令行工具不内嵌 data/）
func LoadGameConfigOrDefault(path string) (*GameConfig, error) {
	if path == "" {
		_, err := os.Stat(DefaultGameConfigPath)
		embeddedHas := embedded.IsInitialized() && embedded.Exists(DefaultGameConfigPath)
		if errors.Is(err, fs.ErrNotExist) && !embeddedHas {
			return DefaultGameConfig(), nil
		}
	}
	return LoadGameConfig(path)
}

// ParseGameConfig 解析 YAML 内容，未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性，返回第一个违反的约束
func (c *GameConfig) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}

	collectible := 0
	for _, r := range c.Phrase {
		if r != ' ' {
			collectible++
		}
	}
	if collectible == 0 {
		return fmt.Errorf("phrase must contain at least one non-space character")
	}

	sizes := []struct {
		field string
		size  SizeConfig
	}{
		{"player", c.Player.SizeConfig},
		{"enemy", c.Enemy.SizeConfig},
		{"projectile", c.Projectile.SizeConfig},
		{"items", c.Items.SizeConfig},
		{"letters", c.Letters.SizeConfig},
		{"pretzel", c.Pretzel},
	}
	for _, s := range sizes {
		if s.size.Width <= 0 || s.size.Height <= 0 {
			return fmt.Errorf("%s size must be positive, got %vx%v", s.field, s.size.Width, s.size.Height)
		}
	}

	if err := c.validatePlayer(); err != nil {
		return err
	}

	intervals := []struct {
		field string
		value float64
	}{
		{"enemy.spawnInterval", c.Enemy.SpawnInterval},
		{"enemy.speedRampInterval", c.Enemy.SpeedRampInterval},
		{"projectile.fireInterval", c.Projectile.FireInterval},
		{"letters.spawnInterval", c.Letters.SpawnInterval},
		{"effects.duration", c.Effects.Duration},
		{"player.hitInvulnerability", c.Player.HitInvulnerability},
	}
	for _, iv := range intervals {
		if iv.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", iv.field, iv.value)
		}
	}

	if c.Enemy.StartSpeed <= 0 {
		return fmt.Errorf("enemy.startSpeed must be positive, got %v", c.Enemy.StartSpeed)
	}
	if c.Enemy.MinSlowSpeed < 0 {
		return fmt.Errorf("enemy.minSlowSpeed cannot be negative, got %v", c.Enemy.MinSlowSpeed)
	}
	if c.Enemy.SpeedRampIncrement < 0 {
		return fmt.Errorf("enemy.speedRampIncrement cannot be negative, got %v", c.Enemy.SpeedRampIncrement)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile.speed must be positive, got %v", c.Projectile.Speed)
	}
	if c.Items.FallSpeed <= 0 {
		return fmt.Errorf("items.fallSpeed must be positive, got %v", c.Items.FallSpeed)
	}

	switch c.Letters.Selection {
	case LetterSequential, LetterRandom:
	default:
		return fmt.Errorf("letters.selection must be %q or %q, got %q", LetterSequential, LetterRandom, c.Letters.Selection)
	}
	switch c.Letters.Completion {
	case CompletionPretzel, CompletionCycle:
	default:
		return fmt.Errorf("letters.completion must be %q or %q, got %q", CompletionPretzel, CompletionCycle, c.Letters.Completion)
	}

	if c.Effects.MultiplierValue < 1 {
		return fmt.Errorf("effects.multiplierValue must be at least 1, got %d", c.Effects.MultiplierValue)
	}

	s := c.Scoring
	for _, v := range []int{s.EnemyKill, s.Life, s.Points, s.Slow, s.Multiplier, s.Weapon, s.Shield, s.Letter, s.Pretzel} {
		if v < 0 {
			return fmt.Errorf("scoring values cannot be negative, got %d", v)
		}
	}

	return validateDropTable(c.DropTable)
}

func (c *GameConfig) validatePlayer() error {
	p := c.Player
	if p.StartLives < 1 {
		return fmt.Errorf("player.startLives must be at least 1, got %d", p.StartLives)
	}
	if p.StartWeapons < 1 {
		return fmt.Errorf("player.startWeapons must be at least 1, got %d", p.StartWeapons)
	}
	if p.MaxWeapons < p.StartWeapons {
		return fmt.Errorf("player.maxWeapons (%d) must be >= player.startWeapons (%d)", p.MaxWeapons, p.StartWeapons)
	}
	if p.BottomMargin < 0 {
		return fmt.Errorf("player.bottomMargin cannot be negative, got %v", p.BottomMargin)
	}
	if p.KeyboardStep <= 0 {
		return fmt.Errorf("player.keyboardStep must be positive, got %v", p.KeyboardStep)
	}
	return nil
}

// validateDropTable 掉落表：道具类型可掉落且不重复，阈值严格递增且位于 (0,100]
func validateDropTable(table []DropEntry) error {
	seen := make(map[components.ItemKind]bool, len(table))
	prev := 0.0
	for i, e := range table {
		kind, err := components.ParseItemKind(e.Kind)
		if err != nil {
			return fmt.Errorf("dropTable[%d]: %w", i, err)
		}
		if !kind.IsDroppable() {
			return fmt.Errorf("dropTable[%d]: %s cannot be dropped by enemies", i, kind)
		}
		if seen[kind] {
			return fmt.Errorf("dropTable[%d]: duplicate kind %s", i, kind)
		}
		seen[kind] = true
		if e.Below <= prev || e.Below > 100 {
			return fmt.Errorf("dropTable[%d]: below must be in (%v, 100], got %v", i, prev, e.Below)
		}
		prev = e.Below
	}
	return nil
}
