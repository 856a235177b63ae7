package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	ipaconfig "github.com/0xalexb/ipa-config"
)

// settings are the command inputs that may come from the environment.
// Flags given on the command line take precedence.
type settings struct {
	ConfigPath string `env:"IPA_CONFIG" envDefault:"/etc/ipa/default.conf"`
	Output     string `env:"IPA_CONFIG_OUTPUT" envDefault:"text"`
	LogLevel   string `env:"IPA_CONFIG_LOG_LEVEL" envDefault:"error"`
	LogFormat  string `env:"IPA_CONFIG_LOG_FORMAT" envDefault:"json"`
}

func parseSettings() (settings, error) {
	parsed, err := env.ParseAs[settings]()
	if err != nil {
		return settings{}, fmt.Errorf("error getting env configs: %w", err)
	}

	if parsed.ConfigPath == "" {
		parsed.ConfigPath = ipaconfig.DefaultPath
	}

	return parsed, nil
}
