// Package config loads the optional YAML configuration for tex2txt.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-tex2txt/internal/fileutil"
	"github.com/alnah/go-tex2txt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// AppDirName is the directory under os.UserConfigDir searched for configs.
const AppDirName = "go-tex2txt"

// Expression policy names accepted in expressions.policy.
const (
	PolicyReplace    = "replace"
	PolicySupplement = "supplement"
)

// Log formats accepted in log.format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for a run.
type Config struct {
	Expressions ExpressionsConfig `yaml:"expressions"`
	References  ReferencesConfig  `yaml:"references"`
	Macros      MacrosConfig      `yaml:"macros"`
	Log         LogConfig         `yaml:"log"`
}

// ExpressionsConfig selects the literal expression list.
type ExpressionsConfig struct {
	File     string `yaml:"file" validate:"max=4096"`                             // Custom list (empty = defaults only)
	Policy   string `yaml:"policy" validate:"omitempty,oneof=replace supplement"` // How File combines with defaults
	Defaults string `yaml:"defaults" validate:"max=4096"`                         // Side file overriding the search
}

// ReferencesConfig controls \ref{} replacement.
type ReferencesConfig struct {
	Placeholder string `yaml:"placeholder" validate:"max=200"` // Empty = built-in placeholder
}

// MacrosConfig toggles optional macro rules.
type MacrosConfig struct {
	KeepInput bool `yaml:"keepInput"` // Leave \input{...} in place
}

// LogConfig defines log output options.
type LogConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

var validate = newValidator()

// newValidator reports fields by their YAML key so messages match the file.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks enum fields and length limits.
// Called automatically by LoadConfig, but available for callers who build a
// Config in code.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace is "Config.expressions.policy"; drop the type name.
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: invalid value %q (must be one of: %s)", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s: exceeds maximum length %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q check", field, fe.Tag())
	}
}

// DefaultConfig returns a configuration that reproduces the CLI defaults:
// defaults-only expressions, built-in placeholder, \input{} stripped.
func DefaultConfig() *Config {
	return &Config{
		Expressions: ExpressionsConfig{Policy: PolicyReplace},
		Log:         LogConfig{Format: LogFormatText},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys left out of the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/go-tex2txt/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
