package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	fs        afero.Fs
	dir       string
	mu        syncutil.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// Option customizes a Manager.
type Option func(*Manager)

// WithFs reads and writes the config through fs instead of the OS.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithConfigDir overrides the XDG config directory.
func WithConfigDir(dir string) Option {
	return func(m *Manager) { m.dir = dir }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		fs:        afero.NewOsFs(),
		dir:       GetConfigDir(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetFs(m.fs)
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.dir)

	v.SetEnvPrefix("GLIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logger reads GLIDE_LOG_* before config exists; keep the names aligned.
	if err := v.BindEnv("logging.level", "GLIDE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GLIDE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GLIDE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GLIDE_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load reads the config file, creating it with defaults on first run,
// then applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configFile(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("fullscreen.autohide_delay", defaults.Fullscreen.AutohideDelay.String())
	m.viper.SetDefault("fullscreen.inhibit_sleep", defaults.Fullscreen.InhibitSleep)
	m.viper.SetDefault("fullscreen.inhibit_reason", defaults.Fullscreen.InhibitReason)
	m.viper.SetDefault("fullscreen.restore_geometry", defaults.Fullscreen.RestoreGeometry)

	m.viper.SetDefault("window.default_width", defaults.Window.DefaultWidth)
	m.viper.SetDefault("window.default_height", defaults.Window.DefaultHeight)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func normalizeConfig(config *Config) {
	config.Fullscreen.InhibitReason = strings.TrimSpace(config.Fullscreen.InhibitReason)
	if config.Fullscreen.InhibitReason == "" {
		config.Fullscreen.InhibitReason = DefaultConfig().Fullscreen.InhibitReason
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case logging.FormatJSON:
		config.Logging.Format = logging.FormatJSON
	default:
		config.Logging.Format = logging.FormatConsole
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path of the file in use.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.dir, configFileName)
}

// createDefaultConfig writes the defaults as TOML on first run.
func (m *Manager) createDefaultConfig() error {
	if err := m.fs.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(m.configFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
