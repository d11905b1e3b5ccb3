package edesto

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// CommandRunner executes external commands for the edesto tool.
// Implementations can use OS exec or mock implementations for testing.
type CommandRunner interface {
	// Run executes the named command with args and returns its stdout.
	// The context bounds the command's lifetime.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OSCommandRunner implements CommandRunner using OS exec.
// It executes commands directly on the system.
type OSCommandRunner struct{}

// NewOSCommandRunner creates a new OS command runner.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the command and returns its stdout.
// The command is killed when the context is cancelled or times out.
func (r *OSCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// bridgeChip is one entry in the USB vendor/product heuristic table.
type bridgeChip struct {
	// VID and PID are bare uppercase hex, no 0x prefix
	VID, PID string
	// Slugs are the registry boards commonly built around this chip,
	// in the order they should be reported
	Slugs []string
}

// bridgeChips maps well-known USB-to-serial bridge and native-USB
// vendor/product pairs to plausible boards. Generic bridge chips (CH340,
// CP210x, FT232) are used by several distinct board families, so a single
// pair can expand to multiple candidates; the port's electrical signature
// cannot disambiguate further.
var bridgeChips = []bridgeChip{
	{VID: "1A86", PID: "7523", Slugs: []string{"esp32", "esp8266", "arduino-nano"}}, // CH340
	{VID: "10C4", PID: "EA60", Slugs: []string{"esp32", "esp32c3", "esp8266"}},      // CP210x
	{VID: "0403", PID: "6001", Slugs: []string{"arduino-nano", "esp8266"}},          // FT232
	{VID: "2341", PID: "0043", Slugs: []string{"arduino-uno"}},                      // Uno R3
	{VID: "2341", PID: "0042", Slugs: []string{"arduino-mega"}},                     // Mega 2560 R3
	{VID: "303A", PID: "1001", Slugs: []string{"esp32s3", "esp32c3", "esp32c6"}},    // Espressif native USB
	{VID: "2E8A", PID: "000A", Slugs: []string{"rp2040"}},                           // Pico USB serial
	{VID: "16C0", PID: "0483", Slugs: []string{"teensy40", "teensy41"}},             // Teensy USB serial
	{VID: "0483", PID: "374B", Slugs: []string{"stm32-nucleo"}},                     // ST-Link V2-1 VCP
}

// boardListOutput mirrors the JSON printed by `arduino-cli board list --json`.
type boardListOutput struct {
	DetectedPorts []detectedPort `json:"detected_ports"`
}

type detectedPort struct {
	MatchingBoards []matchingBoard `json:"matching_boards"`
	Port           portInfo        `json:"port"`
}

type matchingBoard struct {
	Name string `json:"name"`
	FQBN string `json:"fqbn"`
}

type portInfo struct {
	Address       string            `json:"address"`
	Label         string            `json:"label"`
	Protocol      string            `json:"protocol"`
	ProtocolLabel string            `json:"protocol_label"`
	Properties    map[string]string `json:"properties"`
}

// Detector resolves locally connected boards to registry entries.
// Detection is best-effort: every failure mode degrades to zero results so
// the CLI stays usable without attached hardware.
type Detector struct {
	runner CommandRunner
	config Config
	logger *log.Logger
}

// NewDetector creates a detector using the OS command runner.
//
// Example:
//
//	detector := NewDetector(DefaultConfig())
//	for _, d := range detector.DetectBoards(ctx) {
//		fmt.Printf("%s on %s\n", d.Board.Name, d.Port)
//	}
func NewDetector(config Config) *Detector {
	return NewDetectorWithRunner(config, NewOSCommandRunner())
}

// NewDetectorWithRunner creates a detector with a custom command runner.
// This is primarily useful for testing.
func NewDetectorWithRunner(config Config, runner CommandRunner) *Detector {
	return &Detector{
		runner: runner,
		config: config,
		logger: newLogger(config),
	}
}

// DetectBoards probes for connected boards via arduino-cli and maps each
// detected port to registry entries. An FQBN reported by arduino-cli in
// matching_boards always wins a port outright; only ports without a
// registered FQBN match fall back to the USB VID/PID heuristic, which may
// yield several candidate boards for the same port. Ports that match
// neither way are skipped. Never returns an error: if arduino-cli is
// missing, times out, exits non-zero or prints unparseable output, the
// result is simply empty.
func (d *Detector) DetectBoards(ctx context.Context) []DetectedBoard {
	ctx, cancel := context.WithTimeout(ctx, d.config.DetectTimeout)
	defer cancel()

	output, err := d.runner.Run(ctx, d.config.ArduinoCLI, "board", "list", "--json")
	if err != nil {
		d.logger.Debug("arduino-cli board list failed", "err", err)
		return nil
	}

	var parsed boardListOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		d.logger.Debug("could not parse arduino-cli output", "err", err)
		return nil
	}

	var detected []DetectedBoard
	for _, port := range parsed.DetectedPorts {
		detected = append(detected, d.matchPort(port)...)
	}
	return detected
}

// matchPort resolves a single detected port to zero or more boards.
func (d *Detector) matchPort(port detectedPort) []DetectedBoard {
	// Confirmed FQBN match takes unconditional priority, in the order
	// arduino-cli listed the candidates.
	for _, candidate := range port.MatchingBoards {
		if board, ok := GetBoardByFQBN(candidate.FQBN); ok {
			return []DetectedBoard{{Board: board, Port: port.Port.Address}}
		}
	}

	vid := normalizeHexID(port.Port.Properties["vid"])
	pid := normalizeHexID(port.Port.Properties["pid"])
	if vid == "" || pid == "" {
		return nil
	}

	for _, chip := range bridgeChips {
		if chip.VID != vid || chip.PID != pid {
			continue
		}
		var detected []DetectedBoard
		for _, slug := range chip.Slugs {
			board, err := GetBoard(slug)
			if err != nil {
				// Heuristic table references only registered slugs
				d.logger.Debug("bridge chip table references unknown slug", "slug", slug)
				continue
			}
			detected = append(detected, DetectedBoard{Board: board, Port: port.Port.Address})
		}
		return detected
	}

	d.logger.Debug("port matched no board", "address", port.Port.Address, "vid", vid, "pid", pid)
	return nil
}

// normalizeHexID canonicalizes a USB vendor/product ID for comparison:
// uppercase, optional 0x prefix stripped.
func normalizeHexID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "0x")
	id = strings.TrimPrefix(id, "0X")
	return strings.ToUpper(id)
}

// newLogger builds a diagnostic logger from config. User-facing output
// goes through the CLI layer, not here.
func newLogger(config Config) *log.Logger {
	logger := log.New(os.Stderr)
	if level, err := log.ParseLevel(config.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
