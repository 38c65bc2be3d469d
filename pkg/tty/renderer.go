package tty

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/systems"
	"github.com/gonewx/invaders/pkg/types"
)

// glyph 精灵在终端中的字符和样式
type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[types.SpriteID]glyph{
	types.SpritePlayer: {'A', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
	types.SpriteEnemy:  {'W', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	types.SpriteBullet: {'|', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
}

// Renderer 把绘制指令按比例缩放到终端字符网格
//
// 最后一行保留给状态栏，其余行对应整个逻辑屏幕。
// 每个精灵按其碰撞盒尺寸缩放后填充字符，至少占一个单元格。
type Renderer struct {
	screen tcell.Screen
	config *config.WorldConfig
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, cfg *config.WorldConfig) *Renderer {
	return &Renderer{
		screen: screen,
		config: cfg,
	}
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(cmds []systems.DrawCommand, status string) {
	r.screen.Clear()

	cols, rows := r.playfield()
	if cols > 0 && rows > 0 {
		for _, cmd := range cmds {
			r.drawCommand(cmd, cols, rows)
		}
	}

	r.drawStatus(status)
	r.screen.Show()
}

// playfield 返回可用于游戏画面的列数和行数
func (r *Renderer) playfield() (int, int) {
	cols, rows := r.screen.Size()
	return cols, rows - 1
}

// CellAt 把世界坐标映射为单元格坐标
func (r *Renderer) CellAt(x, y float64) (int, int) {
	cols, rows := r.playfield()
	return scale(x, r.config.ScreenWidth, cols), scale(y, r.config.ScreenHeight, rows)
}

func (r *Renderer) drawCommand(cmd systems.DrawCommand, cols, rows int) {
	g, ok := glyphs[cmd.Sprite]
	if !ok {
		return
	}
	size := r.config.SpriteSize(cmd.Sprite)

	x0, y0 := r.CellAt(cmd.X, cmd.Y)
	x1, y1 := r.CellAt(cmd.X+float64(size.Width), cmd.Y+float64(size.Height))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= cols {
				continue
			}
			r.screen.SetContent(x, y, g.r, nil, g.style)
		}
	}
}

func (r *Renderer) drawStatus(status string) {
	cols, rows := r.screen.Size()
	if rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, ch := range status {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, rows-1, ch, nil, style)
		x++
	}
	for ; x < cols; x++ {
		r.screen.SetContent(x, rows-1, ' ', nil, style)
	}
}

// scale 线性映射 [0, worldSize) -> [0, cells)
func scale(v float64, worldSize, cells int) int {
	if worldSize <= 0 {
		return 0
	}
	// 向下取整，左侧越界的精灵落在屏幕外
	return int(math.Floor(v * float64(cells) / float64(worldSize)))
}

// StatusLine 状态栏文本
func StatusLine(frame uint64, alive, total, kills int) string {
	return fmt.Sprintf(" frame %d  enemies %d/%d  kills %d  [←/→ move, space fire, esc quit]",
		frame, alive, total, kills)
}
