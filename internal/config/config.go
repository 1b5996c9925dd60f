// Package config resolves kanban settings from defaults, YAML files, the
// environment and command-line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyAPIBaseURL         = "api.base-url"
	KeyAPITimeout         = "api.timeout"
	KeyDatabasePath       = "database.path"
	KeyClearStaleTaskType = "form.clear-stale-task-type"
	KeyOutputFormat       = "output.format"
	KeyTheme              = "theme"
)

const (
	// DefaultAPIBaseURL is where the board server listens when run locally.
	DefaultAPIBaseURL = "http://127.0.0.1:8787"

	// DefaultTheme is used when no theme is configured.
	DefaultTheme = "tokyonight"
)

const (
	dirName   = ".kanban"
	fileName  = "config.yaml"
	envPrefix = "KANBAN"
)

// Output formats accepted by KeyOutputFormat.
const (
	FormatRich  = "rich"
	FormatLight = "light"
	FormatPlain = "plain"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// set from Initialize so SaveTheme writes where the config was read from
	activeUserConfig    string
	activeProjectConfig string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	v, err := getViper()
	if err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	for k, val := range overrides {
		v.Set(k, val)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	configMu.RLock()
	defer configMu.RUnlock()
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	configMu.RLock()
	defer configMu.RUnlock()
	return v.GetBool(key)
}

// GetDuration fetches a duration configuration value, initializing on demand.
// Bare integers are read as seconds.
func GetDuration(key string) time.Duration {
	v, err := getViper()
	if err != nil {
		return 0
	}
	configMu.RLock()
	defer configMu.RUnlock()
	switch raw := v.Get(key).(type) {
	case int:
		return time.Duration(raw) * time.Second
	case int64:
		return time.Duration(raw) * time.Second
	case float64:
		return time.Duration(raw * float64(time.Second))
	}
	return v.GetDuration(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	v, err := getViper()
	if err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v.Set(key, value)
	return nil
}

// Validate reports settings that cannot work, such as an unknown output
// format or a negative timeout.
func Validate() error {
	switch f := GetString(KeyOutputFormat); f {
	case FormatRich, FormatLight, FormatPlain:
	default:
		return fmt.Errorf("%s: unknown format %q (want rich, light or plain)", KeyOutputFormat, f)
	}
	if d := GetDuration(KeyAPITimeout); d < 0 {
		return fmt.Errorf("%s: must not be negative, got %s", KeyAPITimeout, d)
	}
	if GetString(KeyDatabasePath) == "" && strings.TrimSpace(GetString(KeyAPIBaseURL)) == "" {
		return fmt.Errorf("%s: must be set when %s is empty", KeyAPIBaseURL, KeyDatabasePath)
	}
	return nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	activeUserConfig = userConfigPath
	activeProjectConfig = projectConfigPath
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: reads user and project config files by design of the lookup
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// findProjectConfig walks up from startDir looking for .kanban/config.yaml.
func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, dirName, fileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyAPITimeout, "0s")
	v.SetDefault(KeyDatabasePath, "")
	v.SetDefault(KeyClearStaleTaskType, false)
	v.SetDefault(KeyOutputFormat, FormatRich)
	v.SetDefault(KeyTheme, DefaultTheme)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	activeUserConfig = ""
	activeProjectConfig = ""
}

// ResetForTesting clears package state and initializes against an empty
// temp directory so other packages' tests never read the developer's config.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml")))
	return reset
}

// SaveTheme persists the theme name so the next launch starts with it.
// A discovered project config is updated in place; otherwise the user config
// is written, creating ~/.kanban if needed.
func SaveTheme(themeName string) error {
	targetPath, err := writableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine
	v.Set(KeyTheme, themeName)

	//nolint:gosec // G301: user config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	_ = Set(KeyTheme, themeName)
	return nil
}

func writableConfigPath() (string, error) {
	configMu.RLock()
	project, user := activeProjectConfig, activeUserConfig
	configMu.RUnlock()

	if project != "" {
		if _, err := os.Stat(project); err == nil {
			return project, nil
		}
	}
	if user != "" {
		return user, nil
	}
	return defaultUserConfigPath()
}
