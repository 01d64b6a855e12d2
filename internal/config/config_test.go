package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"toyrobot/internal/interpreter"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Table.Bounds() != interpreter.DefaultBounds() {
		t.Errorf("bounds = %+v, want %+v", cfg.Table.Bounds(), interpreter.DefaultBounds())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("report format = %q", cfg.Report.Format)
	}
}

func TestLoadWithoutDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Report.Format != "text" {
		t.Errorf("applyDefaults not applied: %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toyrobot.yaml")
	content := `table:
  max_x: 9
  max_y: 2
log:
  level: debug
report:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := interpreter.Bounds{MinX: 0, MinY: 0, MaxX: 9, MaxY: 2}
	if cfg.Table.Bounds() != want {
		t.Errorf("bounds = %+v, want %+v", cfg.Table.Bounds(), want)
	}
	if cfg.Log.Level != "debug" || cfg.Report.Format != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TOYROBOT_TABLE_MAX_X", "7")
	t.Setenv("TOYROBOT_REPORT_FORMAT", "yaml")

	v := newViper()
	BindEnv(v)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Table.MaxX != 7 {
		t.Errorf("max_x = %d, want 7", cfg.Table.MaxX)
	}
	if cfg.Table.MaxY != 4 {
		t.Errorf("max_y = %d, want 4", cfg.Table.MaxY)
	}
	if cfg.Report.Format != "yaml" {
		t.Errorf("format = %q", cfg.Report.Format)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: Config{
				Table:  TableConfig{MaxX: 4, MaxY: 4},
				Report: ReportConfig{Format: "text"},
			},
			wantErr: false,
		},
		{
			name: "single cell",
			config: Config{
				Table:  TableConfig{MinX: 2, MinY: 2, MaxX: 2, MaxY: 2},
				Report: ReportConfig{Format: "yaml"},
			},
			wantErr: false,
		},
		{
			name: "inverted x",
			config: Config{
				Table:  TableConfig{MinX: 5, MaxX: 4, MaxY: 4},
				Report: ReportConfig{Format: "text"},
			},
			wantErr: true,
			errMsg:  "invalid table",
		},
		{
			name: "inverted y",
			config: Config{
				Table:  TableConfig{MaxX: 4, MinY: 1, MaxY: 0},
				Report: ReportConfig{Format: "text"},
			},
			wantErr: true,
			errMsg:  "min y",
		},
		{
			name: "unknown format",
			config: Config{
				Table:  TableConfig{MaxX: 4, MaxY: 4},
				Report: ReportConfig{Format: "csv"},
			},
			wantErr: true,
			errMsg:  "unknown report format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
