// SPDX-License-Identifier: MIT

// Package config resolves the demo configuration.
//
// Sources, lowest to highest priority:
//
//	defaults → YAML file (--config) → environment (SPARSEDEMO_*) → flags
//
// Keys:
//
//	size                 extent n of the diagonal pattern
//	default              default value D of the matrix
//	layout               nested | flat
//	format               plain | table (filled-cell listing)
//	degree               B-tree degree (>= 2)
//	fragment.rowBegin    first printed row (inclusive)
//	fragment.rowEnd      last printed row (exclusive)
//	fragment.colBegin    first printed column (inclusive)
//	fragment.colEnd      last printed column (exclusive)
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsemat/sparse"
)

// EnvPrefix prefixes every environment override, e.g. SPARSEDEMO_SIZE.
const EnvPrefix = "SPARSEDEMO"

// Layout names.
const (
	LayoutNested = "nested"
	LayoutFlat   = "flat"
)

// Listing formats.
const (
	FormatPlain = "plain"
	FormatTable = "table"
)

// Defaults reproduce the classic demo: a 10×10 double diagonal and the
// inner 8×8 window.
const (
	DefaultSize     = 10
	DefaultValue    = 0
	DefaultLayout   = LayoutNested
	DefaultFormat   = FormatPlain
	DefaultDegree   = sparse.DefaultDegree
	DefaultRowBegin = 1
	DefaultRowEnd   = 9
	DefaultColBegin = 1
	DefaultColEnd   = 9
)

// Config keys.
const (
	keySize     = "size"
	keyDefault  = "default"
	keyLayout   = "layout"
	keyFormat   = "format"
	keyDegree   = "degree"
	keyRowBegin = "fragment.rowBegin"
	keyRowEnd   = "fragment.rowEnd"
	keyColBegin = "fragment.colBegin"
	keyColEnd   = "fragment.colEnd"
)

// Fragment is the printed window, half-open on both axes.
type Fragment struct {
	RowBegin int `mapstructure:"rowBegin" yaml:"rowBegin"`
	RowEnd   int `mapstructure:"rowEnd" yaml:"rowEnd"`
	ColBegin int `mapstructure:"colBegin" yaml:"colBegin"`
	ColEnd   int `mapstructure:"colEnd" yaml:"colEnd"`
}

// Config is the effective demo configuration.
type Config struct {
	Size     int      `mapstructure:"size" yaml:"size"`
	Default  int      `mapstructure:"default" yaml:"default"`
	Layout   string   `mapstructure:"layout" yaml:"layout"`
	Format   string   `mapstructure:"format" yaml:"format"`
	Degree   int      `mapstructure:"degree" yaml:"degree"`
	Fragment Fragment `mapstructure:"fragment" yaml:"fragment"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Size:    DefaultSize,
		Default: DefaultValue,
		Layout:  DefaultLayout,
		Format:  DefaultFormat,
		Degree:  DefaultDegree,
		Fragment: Fragment{
			RowBegin: DefaultRowBegin,
			RowEnd:   DefaultRowEnd,
			ColBegin: DefaultColBegin,
			ColEnd:   DefaultColEnd,
		},
	}
}

// flagKeys maps flag names registered by RegisterFlags to config keys.
var flagKeys = map[string]string{
	"size":      keySize,
	"default":   keyDefault,
	"layout":    keyLayout,
	"format":    keyFormat,
	"degree":    keyDegree,
	"row-begin": keyRowBegin,
	"row-end":   keyRowEnd,
	"col-begin": keyColBegin,
	"col-end":   keyColEnd,
}

// RegisterFlags adds one flag per config key to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("size", d.Size, "extent n of the diagonal pattern")
	fs.Int("default", d.Default, "default value of unfilled cells")
	fs.String("layout", d.Layout, "storage layout: nested or flat")
	fs.String("format", d.Format, "filled-cell listing format: plain or table")
	fs.Int("degree", d.Degree, "B-tree degree of the storage trees")
	fs.Int("row-begin", d.Fragment.RowBegin, "first printed row (inclusive)")
	fs.Int("row-end", d.Fragment.RowEnd, "last printed row (exclusive)")
	fs.Int("col-begin", d.Fragment.ColBegin, "first printed column (inclusive)")
	fs.Int("col-end", d.Fragment.ColEnd, "last printed column (exclusive)")
}

// Load resolves the configuration from defaults, the optional YAML file at
// path, the environment and the flags in fs (nil fs skips flags), then
// validates the result.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode config")
	}

	return out, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(keySize, d.Size)
	v.SetDefault(keyDefault, d.Default)
	v.SetDefault(keyLayout, d.Layout)
	v.SetDefault(keyFormat, d.Format)
	v.SetDefault(keyDegree, d.Degree)
	v.SetDefault(keyRowBegin, d.Fragment.RowBegin)
	v.SetDefault(keyRowEnd, d.Fragment.RowEnd)
	v.SetDefault(keyColBegin, d.Fragment.ColBegin)
	v.SetDefault(keyColEnd, d.Fragment.ColEnd)
}
