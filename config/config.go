// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"

	"github.com/kollel-app/kollel/constant"
	"github.com/kollel-app/kollel/filesystem"
	"github.com/kollel-app/kollel/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
// Values are not validated here; see Validate.
func Setup() error {
	viper.SetConfigName(constant.Kollel)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Kollel)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		field := Default[env]
		if len(field.Aliases) == 0 {
			viper.MustBindEnv(env)
			continue
		}

		// explicit names bypass the prefix, so the canonical name is listed first
		viper.MustBindEnv(append([]string{env, field.Env()}, field.Aliases...)...)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}
