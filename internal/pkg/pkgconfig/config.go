package pkgconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config reads configuration values by dotted key.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	Close() error
}

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads the YAML file at path. Environment variables override
// file values, with dots mapped to underscores (app.tz -> APP_TZ).
func NewViper(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
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
