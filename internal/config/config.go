package config

import (
	"flag"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/atomicstack/term-glossary/internal/app"
	"github.com/atomicstack/term-glossary/internal/theme"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const defaultServerURL = "http://127.0.0.1:5001"

const (
	envServerURL  = "TERM_GLOSSARY_SERVER"
	envWidth      = "TERM_GLOSSARY_WIDTH"
	envHeight     = "TERM_GLOSSARY_HEIGHT"
	envShowFooter = "TERM_GLOSSARY_FOOTER"
	envTrace      = "TERM_GLOSSARY_TRACE"
	envLogFile    = "TERM_GLOSSARY_LOG_FILE"
	envFont       = "TERM_GLOSSARY_FONT"
	envContact    = "TERM_GLOSSARY_CONTACT"
)

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("term-glossary", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	server := fs.String("server", envOrDefault(env, envServerURL, defaultServerURL), "base URL of the glossary backend")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	font := fs.String("font", envOrDefault(env, envFont, theme.DefaultFamily), "initial font family")
	contact := fs.String("contact", envOrDefault(env, envContact, ""), "text shown in the contact-author dialog")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ServerURL:  *server,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Font:       *font,
			Contact:    *contact,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"server":  *server,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"font":    *font,
			"contact": *contact,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks the server URL and the initial font.
func Validate(cfg Config) error {
	server := strings.TrimSpace(cfg.App.ServerURL)
	if server == "" {
		return fmt.Errorf("server url required")
	}
	parsed, err := url.Parse(server)
	if err != nil {
		return fmt.Errorf("invalid server url %q: %w", server, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("server url must use http or https (got %q)", server)
	}
	if parsed.Host == "" {
		return fmt.Errorf("server url %q has no host", server)
	}
	if _, ok := theme.FontByFamily(cfg.App.Font); !ok {
		families := make([]string, 0, len(theme.Fonts()))
		for _, f := range theme.Fonts() {
			families = append(families, f.Family)
		}
		return fmt.Errorf("unknown font %q (choose one of %s)", cfg.App.Font, strings.Join(families, ", "))
	}
	return nil
}
