package tty

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/invaders/pkg/sim"
)

// FrameInterval 终端前端的帧间隔（约 60 FPS）
const FrameInterval = time.Second / 60

// Frontend 终端游戏前端
//
// 事件处理和帧推进都在 Run 所在的 goroutine 中进行，
// tcell 的事件 goroutine 只负责把事件送入通道。
type Frontend struct {
	screen   tcell.Screen
	world    *sim.World
	tracker  *KeyTracker
	poller   *Poller
	renderer *Renderer

	quitRequested bool
}

// NewFrontend 创建终端前端
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - world: 模拟世界
//   - bindings: 由 ParseBindings 解析的按键绑定
//   - holdFrames: 按键事件视为按住的帧数，<= 0 使用默认值
func NewFrontend(screen tcell.Screen, world *sim.World, bindings Bindings, holdFrames int) *Frontend {
	tracker := NewKeyTracker(holdFrames)
	return &Frontend{
		screen:   screen,
		world:    world,
		tracker:  tracker,
		poller:   NewPoller(tracker, bindings),
		renderer: NewRenderer(screen, world.Config()),
	}
}

// HandleEvent 处理一个 tcell 事件
// Ctrl-C 直接请求退出，其余按键交给按键跟踪器
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			f.quitRequested = true
			return
		}
		if key, ok := MapKey(ev); ok {
			f.tracker.Press(key)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

// Tick 推进一帧并重绘
//
// 退出请求在帧开头检查；检测到退出键的那一帧仍完整执行。
// 返回 false 表示前端已请求退出。
func (f *Frontend) Tick() bool {
	if f.quitRequested {
		return false
	}

	in := f.poller.Poll()
	if in.Quit {
		f.quitRequested = true
		log.Printf("[TTY] 收到退出请求: frame=%d", f.world.Frame()+1)
	}

	res := f.world.Step(in)
	f.tracker.Tick()

	status := StatusLine(res.Frame, f.world.AliveEnemies(), len(f.world.Enemies()), f.world.Kills())
	f.renderer.Draw(res.Commands, status)
	return true
}

// QuitRequested 是否已请求退出
func (f *Frontend) QuitRequested() bool {
	return f.quitRequested
}

// Run 运行主循环直到退出键、Ctrl-C 或 ctx 取消
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go f.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			f.HandleEvent(ev)
			if f.QuitRequested() {
				log.Printf("[TTY] 中断: frame=%d kills=%d", f.world.Frame(), f.world.Kills())
				return nil
			}
		case <-ticker.C:
			if !f.Tick() {
				log.Printf("[TTY] 退出: frame=%d kills=%d", f.world.Frame(), f.world.Kills())
				return nil
			}
		}
	}
}
