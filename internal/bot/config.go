package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"staffbot/internal/models"
	"staffbot/pkg/logger"
)

// ConfigManager owns the bot instruction file. Reads are lock-free snapshots;
// writes validate, back up the previous version, then replace atomically.
type ConfigManager struct {
	mu      sync.RWMutex
	path    string
	current *models.BotConfig
}

// NewConfigManager loads the instruction file at path, falling back to the
// built-in defaults when the file is missing or unreadable.
func NewConfigManager(path string) *ConfigManager {
	m := &ConfigManager{path: path}
	cfg, err := readConfigFile(path)
	if err != nil {
		logger.Warn("bot config not loaded from file, using defaults",
			zap.String("path", path), zap.Error(err))
		cfg = models.DefaultBotConfig()
	}
	m.current = cfg
	return m
}

// Current returns the active configuration. Callers must not mutate it.
func (m *ConfigManager) Current() *models.BotConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update validates and persists a new configuration. The previous file is
// kept as a .backup for Restore. Validation failures leave everything
// untouched and return the problems found.
func (m *ConfigManager) Update(cfg *models.BotConfig) []string {
	if problems := cfg.Validate(); len(problems) > 0 {
		return problems
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backup(); err != nil {
		logger.Warn("backing up bot config failed", zap.Error(err))
	}
	if err := m.write(cfg); err != nil {
		logger.Error("writing bot config failed", zap.Error(err))
		return []string{fmt.Sprintf("saving configuration failed: %v", err)}
	}
	m.current = cfg
	return nil
}

// Reset replaces the configuration with the built-in defaults.
func (m *ConfigManager) Reset() (*models.BotConfig, []string) {
	cfg := models.DefaultBotConfig()
	if problems := m.Update(cfg); len(problems) > 0 {
		return nil, problems
	}
	return cfg, nil
}

// Restore reloads the configuration from the last backup file.
func (m *ConfigManager) Restore() (*models.BotConfig, error) {
	cfg, err := readConfigFile(m.backupPath())
	if err != nil {
		return nil, fmt.Errorf("no backup to restore: %w", err)
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("backup is invalid: %v", problems)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(cfg); err != nil {
		return nil, err
	}
	m.current = cfg
	return cfg, nil
}

func (m *ConfigManager) backup() error {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(m.backupPath(), data, 0o644)
}

// write replaces the config file via temp file + rename so a crash mid-write
// never leaves a half-written file behind.
func (m *ConfigManager) write(cfg *models.BotConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.path)
}

func (m *ConfigManager) backupPath() string {
	return m.path + ".backup"
}

func readConfigFile(path string) (*models.BotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg models.BotConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing bot config: %w", err)
	}
	return &cfg, nil
}
