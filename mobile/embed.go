//go:build mobile

package mobile

import "embed"

// dataFS 移动端内嵌的配置，mobile/data 与根目录 data/ 保持一致
//
//go:embed data/game.yaml data/settings.toml
var dataFS embed.FS
