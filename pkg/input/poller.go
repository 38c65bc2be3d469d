package input

import (
	"fmt"

	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/control"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings 解析后的按键绑定
type Bindings struct {
	Left  ebiten.Key
	Right ebiten.Key
	Fire  ebiten.Key
	Quit  ebiten.Key
}

// ParseBindings 将配置中的按键名解析为 Ebitengine 按键
//
// 按键名使用 Ebitengine 的命名（不区分大小写），如 "ArrowLeft", "Space", "Enter"。
func ParseBindings(kb config.KeyBindings) (Bindings, error) {
	var b Bindings
	entries := []struct {
		name string
		dst  *ebiten.Key
	}{
		{kb.Left, &b.Left},
		{kb.Right, &b.Right},
		{kb.Fire, &b.Fire},
		{kb.Quit, &b.Quit},
	}
	for _, e := range entries {
		if err := e.dst.UnmarshalText([]byte(e.name)); err != nil {
			return Bindings{}, fmt.Errorf("invalid key binding %q: %w", e.name, err)
		}
	}
	return b, nil
}

// Poller 每帧轮询按键来源并生成输入快照
type Poller struct {
	source KeySource
	keys   Bindings
	fire   control.EdgeDetector
	quit   control.EdgeDetector
}

// NewPoller 创建输入轮询器
func NewPoller(source KeySource, keys Bindings) *Poller {
	return &Poller{
		source: source,
		keys:   keys,
	}
}

// Poll 读取本帧输入（非阻塞）
// 每帧只应调用一次，否则边沿检测会丢失开火事件
func (p *Poller) Poll() control.State {
	return control.State{
		Left:  p.source.IsKeyPressed(p.keys.Left),
		Right: p.source.IsKeyPressed(p.keys.Right),
		Fire:  p.fire.Update(p.source.IsKeyPressed(p.keys.Fire)),
		Quit:  p.quit.Update(p.source.IsKeyPressed(p.keys.Quit)),
	}
}
