package config

// 布局配置常量
// 本文件定义了窗口尺寸、HUD 位置和背景星空参数
// 场地尺寸跟随窗口变化，这里只给出初始值

// Window Configuration (窗口配置)
const (
	// WindowWidth 默认窗口宽度（像素）
	WindowWidth = 480

	// WindowHeight 默认窗口高度（像素）
	WindowHeight = 720

	// MinPlayFieldWidth 场地最小宽度
	// 窗口缩得更小时仍按此宽度布局，保证敌人生成区间非空
	MinPlayFieldWidth = 120.0

	// MinPlayFieldHeight 场地最小高度
	MinPlayFieldHeight = 160.0
)

// HUD Configuration (HUD 配置)
const (
	// HUDMargin HUD 文本距离窗口边缘的距离
	HUDMargin = 8.0

	// HUDLineHeight HUD 行高（basicfont 7x13）
	HUDLineHeight = 16.0

	// HeartGlyph 终端和 HUD 中表示一条命的字符
	HeartGlyph = "♥"
)

// Starfield Configuration (背景星空配置)
const (
	// StarCount 星星数量
	StarCount = 200

	// StarMinSize / StarMaxSize 星星半径范围
	StarMinSize = 1.0
	StarMaxSize = 3.0

	// StarMinSpeed / StarMaxSpeed 星星下落速度范围（单位/帧）
	StarMinSpeed = 1.0
	StarMaxSpeed = 3.0
)

// StarPalette 星星颜色（RGB）
var StarPalette = [][3]uint8{
	{0xff, 0xff, 0xff},
	{0xff, 0xd7, 0x00},
	{0xad, 0xd8, 0xe6},
	{0xff, 0x69, 0xb4},
	{0x90, 0xee, 0x90},
}

// ClampPlayField 返回不小于最小尺寸的场地宽高
func ClampPlayField(width, height float64) (float64, float64) {
	if width < MinPlayFieldWidth {
		width = MinPlayFieldWidth
	}
	if height < MinPlayFieldHeight {
		height = MinPlayFieldHeight
	}
	return width, height
}
