package prefs

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the settings read from the .menukit file and MENUKIT_
// environment variables.
type Config interface {
	BasePath() string
	Marker() string
	ClipLength() int
	Background() bool
	// Default returns the configured default for a preference, or "".
	Default(name string) string
}

// LoadConfig reads .menukit (yaml) from $MENUKIT_CONFIG_PATH or the working
// directory. A missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.menukit")
	v.SetDefault("marker", "(Default)")
	v.SetDefault("clip", 100)
	v.SetDefault("background", false)
	v.SetConfigName(".menukit")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MENUKIT")
	v.AutomaticEnv()

	if override := os.Getenv("MENUKIT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("prefs: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("prefs: expanding path: %w", err)
	}
	return &fileConfig{
		Path:        path,
		DefaultMark: v.GetString("marker"),
		Clip:        v.GetInt("clip"),
		Bg:          v.GetBool("background"),
		Defaults:    v.GetStringMapString("preferences"),
	}, nil
}

// StaticConfig is a Config built in code, mostly for tests and embedding.
type StaticConfig struct {
	Path     string
	Defaults map[string]string
}

func (c StaticConfig) BasePath() string { return c.Path }
func (c StaticConfig) Marker() string   { return "(Default)" }
func (c StaticConfig) ClipLength() int  { return 100 }
func (c StaticConfig) Background() bool { return false }
func (c StaticConfig) Default(name string) string {
	return c.Defaults[name]
}

type fileConfig struct {
	Path        string            `json:"path"`
	DefaultMark string            `json:"marker"`
	Clip        int               `json:"clip"`
	Bg          bool              `json:"background"`
	Defaults    map[string]string `json:"preferences"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Marker() string { return f.DefaultMark }

func (f *fileConfig) ClipLength() int { return f.Clip }

func (f *fileConfig) Background() bool { return f.Bg }

func (f *fileConfig) Default(name string) string {
	// viper lower-cases map keys
	if v, ok := f.Defaults[name]; ok {
		return v
	}
	return f.Defaults[lower(name)]
}
