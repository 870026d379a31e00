// Package config 提供 locmeter 的配置文件加载与默认值。
// 配置文件为 YAML 格式，命令行标志的显式取值优先于文件取值。
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config 是扫描行为的配置集合。
type Config struct {
	// DocStringsAsComments 控制文档字符串是否按注释分类。
	// 三态语义：仅显式 true 激活；nil 与 false 都不激活。
	DocStringsAsComments *bool `yaml:"doc_strings_as_comments"`
	// Workers 是并发 worker 数量，0 表示按 CPU 数量取值。
	Workers int `yaml:"workers"`
	// Exclude 是相对路径 glob 列表，命中的文件不参与统计。
	Exclude []string `yaml:"exclude"`
}

// Default 返回内置默认配置。
func Default() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Load 读取并解析 YAML 配置文件，未设置的字段保持默认值。
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	return cfg, nil
}

// TreatDocStringsAsComments 返回解析后的三态布尔值。
func (c Config) TreatDocStringsAsComments() *bool {
	return c.DocStringsAsComments
}
