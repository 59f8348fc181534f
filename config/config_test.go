package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTripAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.InitialWidth = "40%"
	cfg.DragGrid = 10
	cfg.Consumers = []string{"stdout", "clipboard"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.MinWidth != 100 {
		t.Fatalf("expected defaults alongside error")
	}
}

func TestLoad_UnknownConsumerReportedByValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"consumers":["log","fax"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrAdjusted) || !strings.Contains(err.Error(), "fax") {
		t.Fatalf("expected unknown consumer from file to be reported, got %v", err)
	}
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := &Config{
		InitialWidth:      "wide",
		MinWidth:          -1,
		DragGrid:          -5,
		Encoding:          "JPG",
		JPEGQuality:       400,
		Consumers:         []string{"Stdout", "stdout", "fax"},
		SettleDelayMillis: -3,
	}
	_ = cfg.Validate()
	if cfg.InitialWidth != "200px" || cfg.InitialHeight != "200px" {
		t.Fatalf("bad dimensions not reset: %q %q", cfg.InitialWidth, cfg.InitialHeight)
	}
	if cfg.MinWidth != 100 || cfg.MinHeight != 100 || cfg.DragGrid != 0 {
		t.Fatalf("constraints not normalized: %+v", cfg)
	}
	if cfg.Encoding != "jpeg" || cfg.JPEGQuality != 85 {
		t.Fatalf("encoding not normalized: %q %d", cfg.Encoding, cfg.JPEGQuality)
	}
	if !reflect.DeepEqual(cfg.Consumers, []string{"stdout"}) {
		t.Fatalf("unexpected consumers %v", cfg.Consumers)
	}
	if cfg.Placeholder != "Enter feedback..." || cfg.SettleDelayMillis != 0 || cfg.Surface != "screen" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestValidate_InitialSizeRespectsMinimum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialWidth = "50px"
	cfg.InitialHeight = "-40px"
	err := cfg.Validate()
	if !errors.Is(err, ErrAdjusted) {
		t.Fatalf("expected ErrAdjusted, got %v", err)
	}
	if cfg.InitialWidth != "100px" {
		t.Fatalf("width below minimum must be raised, got %q", cfg.InitialWidth)
	}
	if cfg.InitialHeight != "200px" {
		t.Fatalf("negative height must fall back to default, got %q", cfg.InitialHeight)
	}

	cfg = DefaultConfig()
	cfg.MinWidth = 300
	cfg.InitialHeight = "0"
	cfg.InitialWidth = "10%"
	_ = cfg.Validate()
	if cfg.InitialWidth != "10%" || cfg.InitialHeight != "200px" {
		t.Fatalf("unexpected sizes %q x %q", cfg.InitialWidth, cfg.InitialHeight)
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate cleanly: %v", err)
	}
}

func TestValidate_ReportsDroppedConsumers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Consumers = []string{"log", "fax"}
	err := cfg.Validate()
	if !errors.Is(err, ErrAdjusted) || !strings.Contains(err.Error(), "fax") {
		t.Fatalf("expected dropped consumer to be reported, got %v", err)
	}
	if !reflect.DeepEqual(cfg.Consumers, []string{"log"}) {
		t.Fatalf("unexpected consumers %v", cfg.Consumers)
	}
}

func TestApplyEnv_OverlaysValues(t *testing.T) {
	env := map[string]string{
		"SNAPNOTE_DEBUG":       "true",
		"SNAPNOTE_SURFACE":     "file",
		"SNAPNOTE_CONSUMERS":   "stdout, clipboard",
		"SNAPNOTE_DRAG_GRID":   "0",
		"SNAPNOTE_PLACEHOLDER": "  ",
	}
	cfg := DefaultConfig()
	err := ApplyEnv(cfg, func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !cfg.Debug || cfg.Surface != "file" || cfg.DragGrid != 0 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Consumers, []string{"stdout", "clipboard"}) {
		t.Fatalf("unexpected consumers %v", cfg.Consumers)
	}
	if cfg.Placeholder != "Enter feedback..." {
		t.Fatalf("blank env value must not override placeholder")
	}
}

func TestApplyEnv_ReportsMalformed(t *testing.T) {
	env := map[string]string{"SNAPNOTE_JPEG_QUALITY": "high", "SNAPNOTE_PATH": "/reports"}
	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, func(k string) (string, bool) { v, ok := env[k]; return v, ok }); err == nil {
		t.Fatalf("expected error for malformed quality")
	}
	if cfg.Path != "/reports" || cfg.JPEGQuality != 85 {
		t.Fatalf("well-formed keys should still apply: %+v", cfg)
	}
}

func TestLoadEnv_DotenvFileAndProcessPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "SNAPNOTE_ENCODING=jpeg\nSNAPNOTE_PATH=/from-file\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SNAPNOTE_PATH", "/from-env")
	cfg := DefaultConfig()
	if err := LoadEnv(cfg, path); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.Encoding != "jpeg" {
		t.Fatalf("dotenv value not applied: %q", cfg.Encoding)
	}
	if cfg.Path != "/from-env" {
		t.Fatalf("process env should win, got %q", cfg.Path)
	}
	if _, ok := os.LookupEnv("SNAPNOTE_ENCODING"); ok {
		t.Fatalf("dotenv must not leak into the process environment")
	}
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadEnv(cfg, filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
