//go:build mobile

package utils

// IsMobile 移动端构建始终使用触屏操作和全屏布局
func IsMobile() bool {
	return true
}
