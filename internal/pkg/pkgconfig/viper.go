package pkgconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads configuration from the given YAML file. Environment
// variables override file values.
func NewViper(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) Close() error {
	return nil
}
