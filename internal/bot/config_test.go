package bot

import (
	"os"
	"path/filepath"
	"testing"

	"staffbot/internal/models"
)

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bot-instructions.json")
}

func TestConfigManagerDefaultsWhenFileMissing(t *testing.T) {
	m := NewConfigManager(tempConfigPath(t))

	cfg := m.Current()
	if cfg.Identity.Name == "" {
		t.Fatal("missing file should load defaults, got empty identity")
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		t.Errorf("default config must validate cleanly, got %v", problems)
	}
}

func TestConfigManagerUpdatePersistsAndSwaps(t *testing.T) {
	path := tempConfigPath(t)
	m := NewConfigManager(path)

	cfg := models.DefaultBotConfig()
	cfg.Identity.Name = "Renamed Bot"
	if problems := m.Update(cfg); len(problems) > 0 {
		t.Fatalf("Update() rejected a valid config: %v", problems)
	}
	if m.Current().Identity.Name != "Renamed Bot" {
		t.Error("Current() should serve the updated config")
	}

	// A fresh manager reads the persisted file.
	if got := NewConfigManager(path).Current().Identity.Name; got != "Renamed Bot" {
		t.Errorf("persisted name = %q, want Renamed Bot", got)
	}
}

func TestConfigManagerUpdateRejectsInvalid(t *testing.T) {
	m := NewConfigManager(tempConfigPath(t))
	before := m.Current().Identity.Name

	bad := models.DefaultBotConfig()
	bad.Identity = models.BotIdentity{}
	bad.RoleInstructions = nil

	problems := m.Update(bad)
	if len(problems) == 0 {
		t.Fatal("Update() accepted an invalid config")
	}
	if m.Current().Identity.Name != before {
		t.Error("rejected update must leave the active config untouched")
	}
}

func TestConfigManagerRestoreFromBackup(t *testing.T) {
	path := tempConfigPath(t)
	m := NewConfigManager(path)

	first := models.DefaultBotConfig()
	first.Identity.Name = "First"
	if problems := m.Update(first); len(problems) > 0 {
		t.Fatalf("Update() failed: %v", problems)
	}

	second := models.DefaultBotConfig()
	second.Identity.Name = "Second"
	if problems := m.Update(second); len(problems) > 0 {
		t.Fatalf("Update() failed: %v", problems)
	}

	restored, err := m.Restore()
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if restored.Identity.Name != "First" {
		t.Errorf("Restore() = %q, want First", restored.Identity.Name)
	}
	if m.Current().Identity.Name != "First" {
		t.Error("Current() should serve the restored config")
	}
}

func TestConfigManagerRestoreWithoutBackup(t *testing.T) {
	m := NewConfigManager(tempConfigPath(t))
	if _, err := m.Restore(); err == nil {
		t.Error("Restore() without a backup should fail")
	}
}

func TestConfigManagerReset(t *testing.T) {
	path := tempConfigPath(t)
	m := NewConfigManager(path)

	custom := models.DefaultBotConfig()
	custom.Identity.Name = "Custom"
	if problems := m.Update(custom); len(problems) > 0 {
		t.Fatalf("Update() failed: %v", problems)
	}

	cfg, problems := m.Reset()
	if len(problems) > 0 {
		t.Fatalf("Reset() failed: %v", problems)
	}
	if cfg.Identity.Name != models.DefaultBotConfig().Identity.Name {
		t.Errorf("Reset() name = %q", cfg.Identity.Name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Reset() should persist the defaults")
	}
}
