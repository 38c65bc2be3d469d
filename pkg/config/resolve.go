package config

import (
	"fmt"
	"log"

	"github.com/gonewx/invaders/pkg/embedded"
)

// ResolveWorldConfig 按优先级加载世界配置
//
//  1. path 非空：读取该文件（读取失败即返回错误）
//  2. 嵌入的 data/world.yaml
//  3. 内置默认值
//
// seed 非 0 时覆盖配置中的种子。
func ResolveWorldConfig(path string, seed int64) (*WorldConfig, error) {
	var (
		cfg *WorldConfig
		err error
	)

	switch {
	case path != "":
		cfg, err = LoadWorldConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载世界配置: %s", path)

	case embedded.Exists(embedded.DefaultWorldConfigPath):
		data, readErr := embedded.ReadFile(embedded.DefaultWorldConfigPath)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read embedded world config: %w", readErr)
		}
		cfg, err = ParseWorldConfig(data)
		if err != nil {
			return nil, fmt.Errorf("embedded world config: %w", err)
		}
		log.Printf("[Config] 使用嵌入的默认世界配置")

	default:
		cfg = DefaultWorldConfig()
		if embedded.IsInitialized() {
			log.Printf("[Config] 嵌入资源中没有 %s，使用内置默认世界配置", embedded.DefaultWorldConfigPath)
		} else {
			log.Printf("[Config] 嵌入资源未初始化，使用内置默认世界配置")
		}
	}

	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}
