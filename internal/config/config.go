// Command line configuration for the editor
package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"photo-editor/internal/algorithms"
	"photo-editor/internal/core"
)

// Config holds the settings read from the command line
type Config struct {
	Debug      bool
	BlurRadius int
	Edge       string
	Workers    int
	Codec      string
	LogFormat  string
	Open       string // optional image opened at startup
}

// Default returns the settings used when no flags are given
func Default() Config {
	return Config{
		BlurRadius: algorithms.DefaultBlurRadius,
		Edge:       algorithms.EdgeZero.String(),
		Codec:      "std",
		LogFormat:  "auto",
	}
}

// Parse reads flags from args (without the program name)
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug mode with verbose logging")
	fs.IntVar(&cfg.BlurRadius, "blur-radius", cfg.BlurRadius, "Kernel radius of the Gaussian Blur command")
	fs.StringVar(&cfg.Edge, "edge", cfg.Edge, "Blur edge policy: zero or clamp")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines per transform, 0 uses GOMAXPROCS")
	fs.StringVar(&cfg.Codec, "codec", cfg.Codec, "Image codec backend: std or opencv")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: auto, text or json")
	fs.StringVar(&cfg.Open, "open", cfg.Open, "Image to open at startup")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 && cfg.Open == "" {
		cfg.Open = fs.Arg(0)
	}
	return cfg, cfg.Validate()
}

// Validate rejects out-of-range settings
func (c Config) Validate() error {
	if c.BlurRadius < 1 {
		return fmt.Errorf("blur-radius must be at least 1, got %d", c.BlurRadius)
	}
	if _, err := algorithms.ParseEdgeMode(c.Edge); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Codec {
	case "std", "opencv":
	default:
		return fmt.Errorf("unknown codec %q", c.Codec)
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Session converts the settings into a session configuration
func (c Config) Session() core.SessionConfig {
	edge, err := algorithms.ParseEdgeMode(c.Edge)
	if err != nil {
		edge = algorithms.EdgeZero
	}
	return core.SessionConfig{
		BlurRadius: c.BlurRadius,
		Edge:       edge,
		Workers:    c.Workers,
	}
}

// NewLogger initializes the logger with the configured level and format.
// Debug mode logs colored text with full timestamps, otherwise JSON.
func (c Config) NewLogger(out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	logger := logrus.New()
	logger.SetOutput(out)

	format := c.LogFormat
	if format == "auto" {
		format = "json"
		if c.Debug {
			format = "text"
		}
	}

	if c.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   c.Debug,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
