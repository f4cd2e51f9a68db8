package bot

import coreconfig "questbot/core/config"

// Config carries the core configuration for the quest bot application.
type Config struct {
	Core *coreconfig.Config
}

// CoreConfig implements the runner's ConfigCarrier interface.
func (c *Config) CoreConfig() *coreconfig.Config {
	return c.Core
}

// LoadConfig reads and validates the application configuration.
func LoadConfig(path string) (*Config, error) {
	core, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{Core: core}, nil
}
