package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/sim"
	"github.com/gonewx/invaders/pkg/tty"
)

var (
	configPath = flag.String("config", "", "世界配置文件路径（为空则使用内置默认值）")
	seed       = flag.Int64("seed", 0, "敌人出生位置的随机种子（0 表示使用配置或当前时间）")
	logPath    = flag.String("log", "", "日志文件路径（终端被游戏画面占用，日志只能写文件）")
	holdFrames = flag.Int("hold", tty.DefaultHoldFrames, "一次按键视为按住的帧数")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders_tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.ResolveWorldConfig(*configPath, *seed)
	if err != nil {
		return err
	}
	bindings, err := tty.ParseBindings(cfg.Keys)
	if err != nil {
		return err
	}
	world, err := sim.NewWorld(cfg, sim.NewRand(cfg))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tty.NewFrontend(screen, world, bindings, *holdFrames).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
