package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/embedded"
)

func mustKind(t *testing.T, name string) components.ItemKind {
	t.Helper()
	k, err := components.ParseItemKind(name)
	if err != nil {
		t.Fatalf("ParseItemKind(%q): %v", name, err)
	}
	return k
}

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Settings)
	}{
		{
			name:    "empty keeps defaults",
			content: "",
			validate: func(t *testing.T, s *Settings) {
				if s.Window.Width != WindowWidth || s.Window.Height != WindowHeight {
					t.Errorf("unexpected window size %dx%d", s.Window.Width, s.Window.Height)
				}
				if s.Logging.Format != "console" {
					t.Errorf("expected console format, got %q", s.Logging.Format)
				}
			},
		},
		{
			name: "overlay",
			content: `
[audio]
enabled = false

[game]
seed = 42
config_path = "custom.yaml"
`,
			validate: func(t *testing.T, s *Settings) {
				if s.Audio.Enabled {
					t.Error("expected audio disabled")
				}
				if s.Audio.Volume != 0.5 {
					t.Errorf("expected default volume 0.5, got %v", s.Audio.Volume)
				}
				if s.Game.Seed != 42 || s.Game.ConfigPath != "custom.yaml" {
					t.Errorf("unexpected game settings %+v", s.Game)
				}
			},
		},
		{
			name:        "volume out of range",
			content:     "[audio]\nvolume = 1.5\n",
			wantErr:     true,
			errContains: "audio.volume",
		},
		{
			name:        "bad log format",
			content:     "[logging]\nformat = \"xml\"\n",
			wantErr:     true,
			errContains: "logging.format",
		},
		{
			name:        "zero window",
			content:     "[window]\nwidth = 0\n",
			wantErr:     true,
			errContains: "window size",
		},
		{
			name:        "malformed",
			content:     "[window\n",
			wantErr:     true,
			errContains: "TOML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSettings([]byte(tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, s)
		})
	}
}

func TestShippedSettingsParse(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", DefaultSettingsPath))
	if err != nil {
		t.Fatalf("failed to read shipped settings: %v", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("shipped settings should parse: %v", err)
	}
	if s.Window.Title != "Pretzelfall" {
		t.Errorf("unexpected title %q", s.Window.Title)
	}
	t.Logf("✓ shipped settings: %dx%d, audio=%v", s.Window.Width, s.Window.Height, s.Audio.Enabled)
}

func TestLoadSettingsMissingFallsBackToDefaults(t *testing.T) {
	embedded.Init(nil)

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing settings should fall back to defaults: %v", err)
	}
	if s.Window.Width != WindowWidth {
		t.Errorf("expected default width, got %d", s.Window.Width)
	}
}

func TestClampPlayField(t *testing.T) {
	w, h := ClampPlayField(10, 10)
	if w != MinPlayFieldWidth || h != MinPlayFieldHeight {
		t.Errorf("expected clamp to minimum, got %vx%v", w, h)
	}
	w, h = ClampPlayField(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("expected unchanged size, got %vx%v", w, h)
	}
}
