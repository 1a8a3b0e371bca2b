// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hoverbar.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - the path given with --config
//   - ~/.hoverbar/config.toml
//   - ~/.hoverbar/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/hoverbar-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete hoverbar configuration.
type Config struct {
	// Search bar defaults shared by every bar that does not override them
	Search SearchConfig `toml:"search" json:"search"`

	// Demo page content
	Demo DemoConfig `toml:"demo" json:"demo"`

	// Terminal behavior
	UI UIConfig `toml:"ui" json:"ui"`

	// Log file settings
	Log LogConfig `toml:"log" json:"log"`
}

// SearchConfig contains search bar defaults.
type SearchConfig struct {
	// Placeholder is shown while the query is empty
	Placeholder string `toml:"placeholder" json:"placeholder"`
	// Size is one of "sm", "md", "lg"
	Size string `toml:"size" json:"size"`
	// Style is a space-separated list of style extension tokens
	Style string `toml:"style" json:"style"`
	// FocusDelayMs is the hover-to-focus delay in milliseconds; 0 means 300
	FocusDelayMs int `toml:"focus_delay_ms" json:"focus_delay_ms"`
}

// DemoConfig contains the demo page copy and behavior.
type DemoConfig struct {
	HeroPlaceholder   string `toml:"hero_placeholder" json:"hero_placeholder"`
	HeroSize          string `toml:"hero_size" json:"hero_size"`
	SmallPlaceholder  string `toml:"small_placeholder" json:"small_placeholder"`
	MediumPlaceholder string `toml:"medium_placeholder" json:"medium_placeholder"`
	LargePlaceholder  string `toml:"large_placeholder" json:"large_placeholder"`
	// ClearAfterSecs is how long mock results stay on screen
	ClearAfterSecs int `toml:"clear_after_secs" json:"clear_after_secs"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme" json:"theme"`
	// Mouse enables all-motion mouse reporting; hover needs it
	Mouse bool `toml:"mouse" json:"mouse"`
	// AltScreen runs the demo in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
	// Animate eases the panel reveal instead of snapping
	Animate bool `toml:"animate" json:"animate"`
}

// LogConfig contains debug log settings.
type LogConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	// File overrides the default ~/.hoverbar/hoverbar.log
	File    string `toml:"file" json:"file"`
	Verbose bool   `toml:"verbose" json:"verbose"`
}

// Accepted enumerations.
var (
	ValidSizes  = []string{"sm", "md", "lg"}
	ValidThemes = []string{"auto", "dark", "light"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with all default values set.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Placeholder:  "Search anything...",
			Size:         "md",
			Style:        "",
			FocusDelayMs: 300,
		},
		Demo: DemoConfig{
			HeroPlaceholder:   "Search for anything magical...",
			HeroSize:          "lg",
			SmallPlaceholder:  "Quick search...",
			MediumPlaceholder: "Standard search...",
			LargePlaceholder:  "Enhanced search...",
			ClearAfterSecs:    3,
		},
		UI: UIConfig{
			Theme:     "auto",
			Mouse:     true,
			AltScreen: true,
			Animate:   true,
		},
		Log: LogConfig{
			Enabled: false,
			File:    "",
			Verbose: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the hoverbar configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".hoverbar"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the log file path, honoring [log] file.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hoverbar.log"), nil
}

// SourcePath returns the file Resolve would read for override, or "" when
// only defaults apply.
func SourcePath(override string) string {
	if override != "" {
		return override
	}
	for _, fn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := fn()
		if err != nil {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path := SourcePath("")
	if path != "" {
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Resolve loads override when set, otherwise the default locations.
func Resolve(override string) (*Config, error) {
	if override != "" {
		return LoadFromPath(override)
	}
	return Load()
}

// LoadTOML decodes a TOML file on top of cfg. Keys missing from the file keep
// whatever cfg already holds.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// IsJSONPath reports whether path names a JSON config file. Everything else
// is read and written as TOML.
func IsJSONPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// LoadFile decodes path on top of cfg, choosing the format by extension. It
// neither applies env overrides nor validates.
func LoadFile(cfg *Config, path string) error {
	if IsJSONPath(path) {
		return LoadJSON(cfg, path)
	}
	return LoadTOML(cfg, path)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if err := LoadFile(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

const tomlHeader = `# hoverbar configuration file
# Generated by hoverbar - edit with care
#
# The demo reloads this file while it is running.

`

// Save writes cfg to path, as JSON when the path ends in .json and as TOML
// otherwise. An empty path means the default TOML file.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		if path, err = ConfigPathTOML(); err != nil {
			return err
		}
	}
	if IsJSONPath(path) {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// EncodeTOML renders cfg as commented TOML.
func EncodeTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(tomlHeader)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !oneOf(c.Search.Size, ValidSizes) {
		errs = append(errs, ValidationError{
			Field:   "search.size",
			Message: fmt.Sprintf("invalid size '%s', must be one of: %s", c.Search.Size, strings.Join(ValidSizes, ", ")),
		})
	}
	if c.Search.FocusDelayMs < 0 || c.Search.FocusDelayMs > 5000 {
		errs = append(errs, ValidationError{
			Field:   "search.focus_delay_ms",
			Message: fmt.Sprintf("must be between 0 and 5000, got %d", c.Search.FocusDelayMs),
		})
	}

	if !oneOf(c.Demo.HeroSize, ValidSizes) {
		errs = append(errs, ValidationError{
			Field:   "demo.hero_size",
			Message: fmt.Sprintf("invalid size '%s', must be one of: %s", c.Demo.HeroSize, strings.Join(ValidSizes, ", ")),
		})
	}
	if c.Demo.ClearAfterSecs < 1 || c.Demo.ClearAfterSecs > 60 {
		errs = append(errs, ValidationError{
			Field:   "demo.clear_after_secs",
			Message: fmt.Sprintf("must be between 1 and 60, got %d", c.Demo.ClearAfterSecs),
		})
	}

	if !oneOf(c.UI.Theme, ValidThemes) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: %s", c.UI.Theme, strings.Join(ValidThemes, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty string fields and normalizes enumerations.
func (c *Config) SetDefaults() {
	defaults := Default()

	if strings.TrimSpace(c.Search.Placeholder) == "" {
		c.Search.Placeholder = defaults.Search.Placeholder
	}
	if c.Search.Size == "" {
		c.Search.Size = defaults.Search.Size
	}
	c.Search.Size = strings.ToLower(strings.TrimSpace(c.Search.Size))

	if c.Demo.HeroPlaceholder == "" {
		c.Demo.HeroPlaceholder = defaults.Demo.HeroPlaceholder
	}
	if c.Demo.HeroSize == "" {
		c.Demo.HeroSize = defaults.Demo.HeroSize
	}
	c.Demo.HeroSize = strings.ToLower(strings.TrimSpace(c.Demo.HeroSize))
	if c.Demo.SmallPlaceholder == "" {
		c.Demo.SmallPlaceholder = defaults.Demo.SmallPlaceholder
	}
	if c.Demo.MediumPlaceholder == "" {
		c.Demo.MediumPlaceholder = defaults.Demo.MediumPlaceholder
	}
	if c.Demo.LargePlaceholder == "" {
		c.Demo.LargePlaceholder = defaults.Demo.LargePlaceholder
	}
	if c.Demo.ClearAfterSecs == 0 {
		c.Demo.ClearAfterSecs = defaults.Demo.ClearAfterSecs
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - HOVERBAR_PLACEHOLDER: overrides search.placeholder
//   - HOVERBAR_SIZE: overrides search.size
//   - HOVERBAR_THEME: overrides ui.theme
//   - HOVERBAR_NO_MOUSE: "1" or "true" disables mouse reporting
//   - HOVERBAR_NO_ANIMATE: "1" or "true" disables the reveal animation
//   - HOVERBAR_LOG: "1"/"true" enables logging, "0"/"false" disables it,
//     anything else is taken as the log file path
func (c *Config) ApplyEnvOverrides() {
	if placeholder := os.Getenv("HOVERBAR_PLACEHOLDER"); placeholder != "" {
		c.Search.Placeholder = placeholder
	}

	if size := os.Getenv("HOVERBAR_SIZE"); size != "" {
		c.Search.Size = size
	}

	if theme := os.Getenv("HOVERBAR_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if noMouse := os.Getenv("HOVERBAR_NO_MOUSE"); noMouse != "" {
		c.UI.Mouse = !truthy(noMouse)
	}

	if noAnimate := os.Getenv("HOVERBAR_NO_ANIMATE"); noAnimate != "" {
		c.UI.Animate = !truthy(noAnimate)
	}

	if logVal := os.Getenv("HOVERBAR_LOG"); logVal != "" {
		switch strings.ToLower(logVal) {
		case "1", "true", "yes":
			c.Log.Enabled = true
		case "0", "false", "no":
			c.Log.Enabled = false
		default:
			c.Log.Enabled = true
			c.Log.File = logVal
		}
	}
}

func truthy(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || s == "true" || s == "yes"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "search.size").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				boolVal = truthy(strVal)
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	var keys []string
	collectKeys(reflect.TypeOf(Config{}), "", &keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("toml"), ",")[0]
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			collectKeys(f.Type, name, keys)
			continue
		}
		*keys = append(*keys, name)
	}
}

// String returns a JSON representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
