package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"dirfav/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "DIRFAV_LOG_LEVEL")
	viper.BindEnv("gateway.baseURL", "DIRFAV_GATEWAY_BASE_URL")
	viper.BindEnv("gateway.timeout", "DIRFAV_GATEWAY_TIMEOUT")
	viper.BindEnv("persistence.filePath", "DIRFAV_PARTITION_FILE")
	viper.BindEnv("persistence.flushInterval", "DIRFAV_FLUSH_INTERVAL")
	viper.BindEnv("cache.enabled", "DIRFAV_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DIRFAV_CACHE_SIZE")

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

	conf.AppName = "DirectoryFavoritesDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
