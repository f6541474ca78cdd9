// Package config 负责 howmany 的配置加载。
// 优先级：命令行参数 > HOWMANY_* 环境变量 > --config 指定的文件 > 默认值。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"howmany/internal/report"
	"howmany/internal/scanner"
)

// EnvPrefix 是环境变量前缀，例如 HOWMANY_FORMAT=json。
const EnvPrefix = "HOWMANY"

// Config 是一次运行所需的全部设置。
type Config struct {
	Name          string        `mapstructure:"name"`
	ReportVersion string        `mapstructure:"report_version"`
	Extensions    []string      `mapstructure:"extensions"`
	Format        report.Format `mapstructure:"format"`
	Output        string        `mapstructure:"output"`
}

// DefaultConfig 保持与无参数运行时完全一致的行为。
var DefaultConfig = Config{
	Name:          "Sample Analyzer",
	ReportVersion: "1.0.0",
	Extensions:    []string{scanner.DefaultExtension},
	Format:        report.FormatText,
	Output:        "",
}

// flagKeys 记录命令行参数名到配置键的映射。
var flagKeys = map[string]string{
	"name":           "name",
	"report-version": "report_version",
	"ext":            "extensions",
	"format":         "format",
	"output":         "output",
}

// InitFlags 在给定 FlagSet 上注册全部配置参数。
func InitFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "配置文件路径（YAML 或 JSON）")
	flags.String("name", DefaultConfig.Name, "报告标题中的分析器名称")
	flags.String("report-version", DefaultConfig.ReportVersion, "报告标题中的版本号")
	flags.StringSliceP("ext", "e", DefaultConfig.Extensions, "参与统计的文件后缀，可重复或逗号分隔")
	flags.StringP("format", "f", string(DefaultConfig.Format), "标准输出格式: text, json, yaml, csv")
	flags.StringP("output", "o", DefaultConfig.Output, "额外导出的文件路径，格式由后缀决定 (.json/.yaml/.csv/.txt)")
}

// Load 合并默认值、配置文件、环境变量与命令行参数并校验结果。
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		if flag := flags.Lookup("config"); flag != nil {
			configFile = strings.TrimSpace(flag.Value.String())
		}
	}
	if configFile == "" {
		_ = v.BindEnv("config")
		configFile = strings.TrimSpace(v.GetString("config"))
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults 设置全部默认值。
func setDefaults(v *viper.Viper) {
	v.SetDefault("name", DefaultConfig.Name)
	v.SetDefault("report_version", DefaultConfig.ReportVersion)
	v.SetDefault("extensions", DefaultConfig.Extensions)
	v.SetDefault("format", string(DefaultConfig.Format))
	v.SetDefault("output", DefaultConfig.Output)
}

// normalize 清理后缀列表并校验输出格式。
func (c *Config) normalize() error {
	extensions := make([]string, 0, len(c.Extensions))
	for _, item := range c.Extensions {
		for _, ext := range strings.Split(item, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				extensions = append(extensions, ext)
			}
		}
	}
	if len(extensions) == 0 {
		extensions = append(extensions, DefaultConfig.Extensions...)
	}
	c.Extensions = extensions

	format, err := report.ParseFormat(string(c.Format))
	if err != nil {
		return err
	}
	c.Format = format

	c.Output = strings.TrimSpace(c.Output)
	if c.Output != "" {
		if _, err := report.FormatFromPath(c.Output); err != nil {
			return err
		}
	}
	return nil
}
