// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFileFlag = "file"
)

type option func(*viper.Viper) error

func AddConfigPaths(paths ...string) option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// SetEnvPrefix sets the environment prefix and maps nested keys onto environment
// variables, e.g. log.level becomes PREFIX_LOG_LEVEL.
func SetEnvPrefix(prefix string) option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		return nil
	}
}

func SetConfigName(name string) option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindPFlag binds a single flag to a configuration key, which need not match the flag's name.
// A flag that does not exist in the flagset is an error.
func BindPFlag(key string, fs *pflag.FlagSet, flag string) option {
	return func(v *viper.Viper) error {
		f := fs.Lookup(flag)
		if f == nil {
			return fmt.Errorf("no such flag: %s", flag)
		}

		return v.BindPFlag(key, f)
	}
}

// BindConfigFile uses the value of the given flag, if set, as the fully-qualified path
// of the configuration file.  This overrides the search performed via the config name and paths.
func BindConfigFile(fs *pflag.FlagSet, flag string) option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			configFile := f.Value.String()
			if len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// StdOptions applies the standard conventions for an application: the configuration file is named
// after the application and searched for under /etc/<name>, $HOME/.<name> and the current directory,
// environment variables are prefixed with the application name, and the flagset is bound.
func StdOptions(applicationName string, fs *pflag.FlagSet) option {
	return func(v *viper.Viper) error {
		err := AddConfigPaths(
			fmt.Sprintf("/etc/%s", applicationName),
			fmt.Sprintf("$HOME/.%s", applicationName),
			".",
		)(v)

		if err == nil {
			err = SetEnvPrefix(applicationName)(v)
		}

		if err == nil {
			err = AutomaticEnv(v)
		}

		if err == nil {
			err = SetConfigName(applicationName)(v)
		}

		if err == nil {
			err = BindPFlags(fs)(v)
		}

		return err
	}
}

func New(o ...option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

func Configure(v *viper.Viper, o ...option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

// ReadInConfig reads the configuration file.  When no file was found in the search paths, the
// Viper instance is left with only defaults, environment and flags, and no error is returned.
// An explicitly configured file that cannot be read, or any malformed file, is an error.
func ReadInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		return nil
	}

	if err != nil {
		return fmt.Errorf("unable to read configuration: %w", err)
	}

	return nil
}
