package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/forge-labs/forge/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// builtinDefaults are used when neither the config file nor the
// environment supplies a value.
var builtinDefaults = Values{
	KeyArch:     ArchFullstack,
	KeyFrontend: FrontendReact,
	KeyBackend:  BackendExpress,
	KeyDB:       DBPostgres,
	KeyORM:      ORMPrisma,
	KeyCSS:      CSSTailwind,
	KeyPkg:      "pnpm",
	KeyLang:     LangTS,
}

// Dir returns the path to the config directory (~/.forge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.forge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads defaults from the config file and environment.
func Load() (*viper.Viper, error) {
	return LoadFile(FilePath())
}

// LoadFile initializes a Viper instance that reads path and FORGE_*
// environment variables on top of the built-in defaults. A missing file is
// not an error. The file is never written.
func LoadFile(path string) (*viper.Viper, error) {
	v := viper.New()
	for k, val := range builtinDefaults {
		v.SetDefault(string(k), val)
	}
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return v, nil
}

// Defaults extracts the default value for every choice key from v.
func Defaults(v *viper.Viper) (Values, error) {
	out := make(Values, len(builtinDefaults))
	for _, k := range ChoiceKeys() {
		val := v.GetString(string(k))
		if err := ValidateChoice(k, val); err != nil {
			return nil, fmt.Errorf("default %s: %w", k, err)
		}
		out[k] = val
	}
	return out, nil
}
