package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	debugFace      = text.NewGoXFace(basicfont.Face7x13)
	debugTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	debugBoxColor  = color.RGBA{R: 0, G: 255, B: 0, A: 160}
)

// drawDebugOverlay 绘制调试信息（--debug 启用）
// 左上角显示帧号、存活敌人、击杀和开火次数，并给每个绘制中的精灵描出碰撞盒
func (s *GameScene) drawDebugOverlay(screen *ebiten.Image) {
	cfg := s.world.Config()
	for _, cmd := range s.lastFrame.Commands {
		size := cfg.SpriteSize(cmd.Sprite)
		vector.StrokeRect(screen,
			float32(cmd.X), float32(cmd.Y),
			float32(size.Width), float32(size.Height),
			1, debugBoxColor, false)
	}

	lineHeight := float64(basicfont.Face7x13.Metrics().Height.Ceil())
	for i, line := range s.debugLines() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(debugTextColor)
		text.Draw(screen, line, debugFace, op)
	}
}

// debugLines 调试面板的文本行
func (s *GameScene) debugLines() []string {
	bullet := "ready"
	if s.world.BulletFlying() {
		bullet = "flying"
	}
	return []string{
		fmt.Sprintf("frame: %d", s.world.Frame()),
		fmt.Sprintf("enemies: %d/%d", s.world.AliveEnemies(), len(s.world.Enemies())),
		fmt.Sprintf("kills: %d  fires: %d", s.world.Kills(), s.fires),
		fmt.Sprintf("bullet: %s", bullet),
	}
}
