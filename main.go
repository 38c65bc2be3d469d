package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/invaders/pkg/app"
	"github.com/gonewx/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	debug      = flag.Bool("debug", false, "绘制调试信息（帧号、存活敌人、碰撞盒）")
	configPath = flag.String("config", "", "世界配置文件路径（默认使用内置 data/world.yaml）")
	assetsDir  = flag.String("assets", "assets", "精灵图片目录")
	seed       = flag.Int64("seed", 0, "敌人出生位置的随机种子（0 表示使用配置或当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Debug:      *debug,
		ConfigPath: *configPath,
		AssetsDir:  *assetsDir,
		Seed:       *seed,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := game.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(app.WindowTitle)
	if icon := game.WindowIcon(); icon != nil {
		ebiten.SetWindowIcon(icon)
	}

	// 退出键触发 ebiten.Termination，RunGame 此时返回 nil
	if err := ebiten.RunGame(game); err != nil && !app.IsTermination(err) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
