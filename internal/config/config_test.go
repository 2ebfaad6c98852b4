package config

import (
	"strings"
	"testing"

	"github.com/atomicstack/term-glossary/internal/theme"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ServerURL != defaultServerURL {
		t.Fatalf("expected default server, got %q", cfg.App.ServerURL)
	}
	if cfg.App.Font != theme.DefaultFamily {
		t.Fatalf("expected default font, got %q", cfg.App.Font)
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace disabled by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TERM_GLOSSARY_SERVER=http://env:5001",
		"TERM_GLOSSARY_WIDTH=100",
		"TERM_GLOSSARY_FOOTER=true",
		"TERM_GLOSSARY_FONT=NanoQyongDaSongB",
		"TERM_GLOSSARY_CONTACT=env contact",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"--server", "https://flag.example", "--height", "30", "--trace"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ServerURL != "https://flag.example" {
		t.Fatalf("expected flag server, got %q", cfg.App.ServerURL)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer from env and trace from flag")
	}
	if cfg.App.Font != "NanoQyongDaSongB" || cfg.App.Contact != "env contact" {
		t.Fatalf("unexpected font/contact %q/%q", cfg.App.Font, cfg.App.Contact)
	}
	if cfg.Flags["height"] != "30" || cfg.Flags["server"] != "https://flag.example" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TERM_GLOSSARY_WIDTH=wide", "TERM_GLOSSARY_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks for malformed env values")
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected negative width to fail")
	}
	if _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatalf("expected negative height to fail")
	}
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
}

func TestValidate(t *testing.T) {
	base, _ := LoadArgs(nil, nil)
	cases := map[string]func(*Config){
		"empty server": func(c *Config) { c.App.ServerURL = " " },
		"ftp server":   func(c *Config) { c.App.ServerURL = "ftp://example.com" },
		"no host":      func(c *Config) { c.App.ServerURL = "http://" },
		"bad font":     func(c *Config) { c.App.Font = "Comic Sans" },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		err := Validate(cfg)
		if err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
		if name == "bad font" && !strings.Contains(err.Error(), "ZhiYiSongTi") {
			t.Fatalf("expected font choices in error, got %v", err)
		}
	}
}
