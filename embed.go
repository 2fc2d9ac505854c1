package main

import "embed"

// dataFS 默认玩法配置和运行时设置，磁盘上存在同名文件时优先使用磁盘文件
//
//go:embed data/game.yaml data/settings.toml
var dataFS embed.FS
