// Package tty 终端前端
//
// 用 tcell 把模拟世界画到字符网格上，并把终端按键事件转换为 control.State。
// 按键绑定沿用世界配置中的 Ebitengine 键名，但本包不依赖 Ebitengine，
// 可以在没有图形环境的机器上构建。
package tty

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/control"
)

// DefaultHoldFrames 一次按键事件视为按住的帧数
//
// 终端只上报按下（以及系统的自动重复），不上报松开，
// 因此按键在最后一次事件之后保持若干帧再视为松开。
// 该值需要覆盖系统自动重复的间隔，否则按住开火键会被识别为连续点按。
// 反过来，按住期间的再次按键与自动重复无法区分，也不会产生新的开火。
const DefaultHoldFrames = 30

// 终端可以产生的键名（规范形式为小写的 Ebitengine 键名）
const (
	keyArrowLeft  = "arrowleft"
	keyArrowRight = "arrowright"
	keyArrowUp    = "arrowup"
	keyArrowDown  = "arrowdown"
	keyEscape     = "escape"
	keyEnter      = "enter"
	keyTab        = "tab"
	keySpace      = "space"
)

// keyAliases Ebitengine 接受的别名
var keyAliases = map[string]string{
	"left":  keyArrowLeft,
	"right": keyArrowRight,
	"up":    keyArrowUp,
	"down":  keyArrowDown,
}

// canonicalKey 把配置中的键名转换为规范形式，终端无法产生的键返回 false
func canonicalKey(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	switch key {
	case keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown,
		keyEscape, keyEnter, keyTab, keySpace:
		return key, true
	}
	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return key, true
	}
	return "", false
}

// Bindings 终端按键绑定（规范键名）
type Bindings struct {
	Left  string
	Right string
	Fire  string
	Quit  string
}

// ParseBindings 解析配置中的按键绑定
// 终端无法产生的键（如功能键、修饰键）返回错误
func ParseBindings(kb config.KeyBindings) (Bindings, error) {
	var b Bindings
	entries := []struct {
		name string
		dst  *string
	}{
		{kb.Left, &b.Left},
		{kb.Right, &b.Right},
		{kb.Fire, &b.Fire},
		{kb.Quit, &b.Quit},
	}
	for _, e := range entries {
		key, ok := canonicalKey(e.name)
		if !ok {
			return Bindings{}, fmt.Errorf("key binding %q is not available in the terminal", e.name)
		}
		*e.dst = key
	}
	return b, nil
}

// KeyTracker 把终端按键事件转换为"当前按下"的键集合
type KeyTracker struct {
	holdFrames int
	held       map[string]int // 键 -> 剩余按住帧数
}

// NewKeyTracker 创建按键跟踪器，holdFrames <= 0 时使用 DefaultHoldFrames
func NewKeyTracker(holdFrames int) *KeyTracker {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &KeyTracker{
		holdFrames: holdFrames,
		held:       make(map[string]int),
	}
}

// Press 记录一次按键事件（包括自动重复），刷新按住时长
func (kt *KeyTracker) Press(key string) {
	kt.held[key] = kt.holdFrames
}

// Tick 每帧结束时调用，按住时长耗尽的键视为松开
func (kt *KeyTracker) Tick() {
	for key, frames := range kt.held {
		if frames <= 1 {
			delete(kt.held, key)
			continue
		}
		kt.held[key] = frames - 1
	}
}

// IsHeld 键当前是否视为按下
func (kt *KeyTracker) IsHeld(key string) bool {
	return kt.held[key] > 0
}

// Poller 从 KeyTracker 生成每帧输入快照
type Poller struct {
	tracker *KeyTracker
	keys    Bindings
	fire    control.EdgeDetector
	quit    control.EdgeDetector
}

// NewPoller 创建终端输入轮询器
func NewPoller(tracker *KeyTracker, keys Bindings) *Poller {
	return &Poller{
		tracker: tracker,
		keys:    keys,
	}
}

// Poll 读取本帧输入，每帧只应调用一次
func (p *Poller) Poll() control.State {
	return control.State{
		Left:  p.tracker.IsHeld(p.keys.Left),
		Right: p.tracker.IsHeld(p.keys.Right),
		Fire:  p.fire.Update(p.tracker.IsHeld(p.keys.Fire)),
		Quit:  p.quit.Update(p.tracker.IsHeld(p.keys.Quit)),
	}
}

// MapKey 把 tcell 按键事件映射为规范键名
// 无法映射的按键返回 false
func MapKey(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return keyArrowLeft, true
	case tcell.KeyRight:
		return keyArrowRight, true
	case tcell.KeyUp:
		return keyArrowUp, true
	case tcell.KeyDown:
		return keyArrowDown, true
	case tcell.KeyEscape:
		return keyEscape, true
	case tcell.KeyEnter:
		return keyEnter, true
	case tcell.KeyTab:
		return keyTab, true
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}
	return "", false
}

// mapRune 空格和字母键，字母不区分大小写
func mapRune(r rune) (string, bool) {
	if r == ' ' {
		return keySpace, true
	}
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return "", false
	}
	return string(unicode.ToLower(r)), true
}
