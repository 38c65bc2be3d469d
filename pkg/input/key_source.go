// Package input 把 Ebitengine 的键盘状态转换为 control.State
//
// 按键绑定来自世界配置，使用 Ebitengine 的键名；
// 按键来源抽象为 KeySource，测试中用 gomock 或 PressedKeys 替换。
package input

import "github.com/hajimehoshi/ebiten/v2"

//go:generate go tool mockgen -destination=./mocks/key_source_mock.go -package=mocks . KeySource

// KeySource 按键状态来源
// 游戏运行时由 Ebitengine 提供，测试和终端前端可替换为其他实现
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeySource 直接查询 Ebitengine 的键盘状态
type EbitenKeySource struct{}

// IsKeyPressed 实现 KeySource
func (EbitenKeySource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// PressedKeys 一组当前按下的键，可作为 KeySource 使用
// 终端前端把收到的按键事件写入这里
type PressedKeys map[ebiten.Key]bool

// IsKeyPressed 实现 KeySource
func (p PressedKeys) IsKeyPressed(key ebiten.Key) bool {
	return p[key]
}
