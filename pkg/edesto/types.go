// Package edesto generates AI-assistant instruction documents tailored to a
// microcontroller board and serial port, and detects locally connected boards
// via arduino-cli.
package edesto

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Global viper instance for configuration
var configViper *viper.Viper

// initializeViper sets up viper configuration
func initializeViper() {
	// Set config file name and paths
	configViper.SetConfigName(".edesto") // name of config file (without extension)
	configViper.AddConfigPath(".")       // look for config in the working directory
	configViper.AddConfigPath("$HOME")   // look for config in home directory

	// Set default values
	configViper.SetDefault("arduino_cli", "arduino-cli")
	configViper.SetDefault("detect_timeout_seconds", 10)
	configViper.SetDefault("claude_file", "CLAUDE.md")
	configViper.SetDefault("cursor_file", ".cursorrules")
	configViper.SetDefault("write_cursor_rules", true)
	configViper.SetDefault("log_level", "warn")

	// Bind environment variables (these override config file values)
	_ = configViper.BindEnv("arduino_cli", "EDESTO_ARDUINO_CLI")
	_ = configViper.BindEnv("detect_timeout_seconds", "EDESTO_DETECT_TIMEOUT_SECONDS")
	_ = configViper.BindEnv("claude_file", "EDESTO_CLAUDE_FILE")
	_ = configViper.BindEnv("cursor_file", "EDESTO_CURSOR_FILE")
	_ = configViper.BindEnv("write_cursor_rules", "EDESTO_WRITE_CURSOR_RULES")
	_ = configViper.BindEnv("log_level", "EDESTO_LOG_LEVEL")

	// Read config file (ignore error if file doesn't exist)
	_ = configViper.ReadInConfig()
}

// init initializes the global viper configuration
func init() {
	configViper = viper.New()
	initializeViper()
}

// reloadConfigForTesting reloads the configuration (used for testing)
func reloadConfigForTesting() {
	// Reset viper instance
	configViper = viper.New()
	initializeViper()
}

// Config holds configuration for the edesto tool
type Config struct {
	// ArduinoCLI is the arduino-cli binary name or path (default: "arduino-cli")
	ArduinoCLI string
	// DetectTimeout bounds a single arduino-cli invocation (default: 10s)
	DetectTimeout time.Duration
	// ClaudeFile is the instructions output path (default: "CLAUDE.md")
	ClaudeFile string
	// CursorFile is the mirrored output path for Cursor users (default: ".cursorrules")
	CursorFile string
	// WriteCursorRules indicates whether to mirror the instructions to CursorFile (default: true)
	WriteCursorRules bool
	// LogLevel is the log verbosity for diagnostic output (default: "warn")
	LogLevel string
}

// DefaultConfig returns the default configuration with file and environment variable support
func DefaultConfig() Config {
	return Config{
		ArduinoCLI:       configViper.GetString("arduino_cli"),
		DetectTimeout:    time.Duration(configViper.GetInt("detect_timeout_seconds")) * time.Second,
		ClaudeFile:       configViper.GetString("claude_file"),
		CursorFile:       configViper.GetString("cursor_file"),
		WriteCursorRules: configViper.GetBool("write_cursor_rules"),
		LogLevel:         configViper.GetString("log_level"),
	}
}

// DetectedBoard pairs a registry board with the serial port it was found on.
// It is produced per detection run and never persisted.
type DetectedBoard struct {
	// Board is the matched registry entry
	Board *Board
	// Port is the serial port address (e.g. "/dev/ttyUSB0")
	Port string
}

// BoardNotFoundError is returned when a board slug is not in the registry
type BoardNotFoundError struct {
	// Slug is the unregistered identifier that was looked up
	Slug string
}

func (e *BoardNotFoundError) Error() string {
	return fmt.Sprintf("unknown board: %s. Use 'edesto boards' to list supported boards", e.Slug)
}

// GenerateError represents an error that occurred while writing the
// instructions document
type GenerateError struct {
	// Op is the operation that failed (render, write)
	Op string
	// Path is the output path involved
	Path string
	// Err is the underlying error
	Err error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("edesto %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
