package providers

import (
	"dialogd/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("rotation.interval", "60s")
	viper.SetDefault("cache.size", 256)

	viper.BindEnv("logger.level", "DIALOGD_LOG_LEVEL")
	viper.BindEnv("rotation.interval", "DIALOGD_ROTATION_INTERVAL")
	viper.BindEnv("cache.enabled", "DIALOGD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DIALOGD_CACHE_SIZE")
	viper.BindEnv("metrics.enabled", "DIALOGD_METRICS_ENABLED")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FakeDialogDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
