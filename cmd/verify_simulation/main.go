// verify_simulation 无头运行模拟并逐帧检查运行规则
//
// 不打开窗口，也不依赖图形库，用脚本化的按键序列驱动 sim.World，
// 任何一帧违反规则或按住开火键产生多次发射时以非 0 状态退出。
//
// 用法:
//
//	go run ./cmd/verify_simulation --script=sweep --frames=3000 --seed=42 --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/control"
	"github.com/gonewx/invaders/pkg/sim"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "世界配置文件路径（为空则使用内置默认值）")
	seed       = flag.Int64("seed", 1, "随机种子")
	frames     = flag.Int("frames", 3000, "模拟帧数")
	script     = flag.String("script", "sweep", "按键脚本: idle | hold-fire | sweep | tap-fire")
)

// held 某一帧按住的键
type held struct {
	left, right, fire bool
}

// keyScript 返回第 frame 帧按住的键
type keyScript func(frame int) held

var scripts = map[string]keyScript{
	"idle": func(int) held { return held{} },

	// 全程按住开火键：整个运行期间只允许发射一次
	"hold-fire": func(int) held { return held{fire: true} },

	// 左右往返扫动，开火键按住 30 帧、松开 30 帧
	"sweep": func(frame int) held {
		left := (frame/240)%2 == 1
		return held{left: left, right: !left, fire: frame%60 < 30}
	},

	// 每隔一帧点按开火键
	"tap-fire": func(frame int) held { return held{fire: frame%2 == 0} },
}

// report 一次运行的统计
type report struct {
	frames  int
	fires   int
	presses int
	kills   int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	rep, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("PASS: script=%s frames=%d presses=%d fires=%d kills=%d\n",
		*script, rep.frames, rep.presses, rep.fires, rep.kills)
}

func run() (report, error) {
	var rep report

	keyFn, ok := scripts[*script]
	if !ok {
		return rep, fmt.Errorf("unknown script %q", *script)
	}

	cfg, err := loadConfig()
	if err != nil {
		return rep, err
	}
	world, err := sim.NewWorld(cfg, sim.NewRand(cfg))
	if err != nil {
		return rep, err
	}

	checker := sim.NewInvariantChecker()
	var fireEdge control.EdgeDetector

	for i := 0; i < *frames; i++ {
		keys := keyFn(i)
		in := control.State{
			Left:  keys.left,
			Right: keys.right,
			Fire:  fireEdge.Update(keys.fire),
		}

		// 开火键从松开到按下的次数即允许的最大发射次数
		if in.Fire {
			rep.presses++
		}

		res := world.Step(in)
		rep.frames++
		if res.Fired {
			rep.fires++
		}
		rep.kills += res.Killed

		if err := checker.Check(world, res); err != nil {
			return rep, err
		}
		if rep.fires > rep.presses {
			return rep, fmt.Errorf("frame %d: %d fires from %d fire key presses", res.Frame, rep.fires, rep.presses)
		}
	}

	log.Printf("[Verify] 完成: 存活敌人 %d/%d", world.AliveEnemies(), len(world.Enemies()))
	return rep, nil
}

// loadConfig 验证工具默认使用内置配置，保证结果可复现
func loadConfig() (*config.WorldConfig, error) {
	if *configPath == "" {
		cfg := config.DefaultWorldConfig()
		cfg.Seed = *seed
		return cfg, nil
	}
	return config.ResolveWorldConfig(*configPath, *seed)
}
