package entities

import "github.com/decker502/pretzelfall/pkg/config"

const (
	testFieldWidth  = 480.0
	testFieldHeight = 720.0
)

// newTestWorld 使用默认调参创建 480x720 的场地
func newTestWorld() *World {
	return NewWorld(config.DefaultGameConfig(), testFieldWidth, testFieldHeight)
}
