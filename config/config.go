package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/moyu-x/dupe-hunter/internal"
)

type Config struct {
	Scanner struct {
		IncludeEmpty bool `mapstructure:"include_empty"`
	}
	Logging struct {
		Level string
		File  string
	}
}

// Load 读取配置文件，文件不存在时使用默认值
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(internal.DefaultConfigDir)
	v.AddConfigPath(".")
	v.AddConfigPath(internal.SystemConfigDir)

	return load(v)
}

// LoadFile 读取指定路径的配置文件
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("scanner.include_empty", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
