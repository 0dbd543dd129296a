package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/domain/entities/filter"
	"bikeshare/loader"
	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./explorer/config/config.yaml"

	logLevelEnv  = "LOG_LEVEL"
	rabbitUrlEnv = "RABBIT_URL"
	dataDirEnv   = "DATA_DIR"
)

type ExplorerConfig struct {
	LogLevel  string                       `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	PageSize  int                          `yaml:"page_size" validate:"gt=0"`
	Data      loader.Config                `yaml:"data"`
	Publisher communication.RabbitMQConfig `yaml:"publisher"`
}

// LoadConfig reads the explorer config file, applies environment overrides and validates it
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if rabbitUrl := os.Getenv(rabbitUrlEnv); rabbitUrl != "" {
		explorerConfig.Publisher.URL = rabbitUrl
	}
	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		explorerConfig.Data.DataDir = dataDir
	}

	explorerConfig.LogLevel = strings.ToLower(explorerConfig.LogLevel)
	if explorerConfig.Data.Columns == (loader.ColumnsConfig{}) {
		explorerConfig.Data.Columns = loader.DefaultColumns()
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// Validate checks the struct tags and that every supported city has a data source
func (ec *ExplorerConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}

	for _, city := range filter.Cities() {
		if _, ok := ec.Data.Cities[string(city)]; !ok {
			return fmt.Errorf("invalid explorer config: missing data source for %s", city)
		}
	}

	var supported []string
	for _, city := range filter.Cities() {
		supported = append(supported, string(city))
	}
	for name := range ec.Data.Cities {
		if !utils.ContainsString(name, supported) {
			return fmt.Errorf("invalid explorer config: unsupported city %q", name)
		}
	}

	if ec.Publisher.Enabled && ec.Publisher.QueueDeclarationConfig.Name == "" {
		return fmt.Errorf("invalid explorer config: publisher enabled without queue name")
	}

	return nil
}
