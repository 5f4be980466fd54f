// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
	UnmarshalKey(string, interface{}, ...viper.DecoderConfigOption) error
}

// DecodeHook is the decoding used for all configuration structs.  Durations may be written
// as strings such as "15s", slices as comma-delimited strings, and any type implementing
// encoding.TextUnmarshaler is decoded from its text form.
func DecodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	)
}

// Unmarshal decodes the entire configuration into v using DecodeHook
func Unmarshal(u unmarshaler, v interface{}) error {
	return u.Unmarshal(v, DecodeHook())
}

// UnmarshalKey decodes a single configuration key into v using DecodeHook
func UnmarshalKey(u unmarshaler, key string, v interface{}) error {
	return u.UnmarshalKey(key, v, DecodeHook())
}

type defaulter interface {
	SetDefault(string, interface{})
}

type Defaults map[string]interface{}

func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}
