package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigInvalid             = errors.New("invalid configuration")
)

const envPrefix = "PANDASCAN"

func Load(configFileDirs ...string) (*LedgerConfig, error) {
	ledgerConfig := getDefaultLedgerConfig()

	err := setDefaults(ledgerConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(configFileDirs...)
	if err != nil {
		return nil, err
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.Unmarshal(ledgerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = ledgerConfig.Validate()
	if err != nil {
		return nil, err
	}

	return ledgerConfig, nil
}

// DumpConfig writes the effective configuration, defaults included, to the given file.
func DumpConfig(configFile string) error {
	err := viper.WriteConfigAs(configFile)
	if err != nil {
		return fmt.Errorf("error while dumping config: %w", err)
	}

	return nil
}

func (c *LedgerConfig) Validate() error {
	if c.Node == nil || c.Node.URL == "" {
		return errors.Join(ErrConfigInvalid, errors.New("node.url is required"))
	}

	if c.Indexer == nil || c.Indexer.SyncInterval <= 0 || c.Indexer.MaxBlocksPerCycle <= 0 {
		return errors.Join(ErrConfigInvalid, errors.New("indexer.syncInterval and indexer.maxBlocksPerCycle must be positive"))
	}

	if c.Db == nil {
		return errors.Join(ErrConfigInvalid, errors.New("db config is missing"))
	}

	switch c.Db.Mode {
	case DbModePostgres, DbModeSqlite, DbModeSqliteMemory:
	default:
		return errors.Join(ErrConfigInvalid, fmt.Errorf("db mode %s is invalid", c.Db.Mode))
	}

	if c.Notifications == nil {
		return errors.Join(ErrConfigInvalid, errors.New("notifications config is missing"))
	}

	switch c.Notifications.Engine {
	case NotificationEngineRedis, NotificationEngineNats, NotificationEngineNone:
	default:
		return errors.Join(ErrConfigInvalid, fmt.Errorf("notification engine %s is invalid", c.Notifications.Engine))
	}

	return nil
}

func setDefaults(defaultConfig *LedgerConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		err = errors.Join(ErrConfigFailedToSetDefaults, err)
		return err
	}

	for key, value := range defaultsMap {
		viper.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		viper.AddConfigPath(path)
	}

	return viper.ReadInConfig()
}
