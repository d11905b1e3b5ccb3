package edesto

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// serialPortPatterns are the device node globs checked for attached boards.
// Covers Linux USB serial (ttyUSB), CDC ACM (ttyACM) and macOS (cu.usb*).
var serialPortPatterns = []string{
	"/dev/ttyUSB*",
	"/dev/ttyACM*",
	"/dev/cu.usb*",
}

// CheckResult is the outcome of a single environment check.
type CheckResult struct {
	// Name identifies the check (e.g. "arduino-cli")
	Name string
	// OK indicates whether the check passed
	OK bool
	// Detail is extra information for passing checks (path, version, ports)
	Detail string
	// Remedy is the suggested fix when the check failed
	Remedy string
}

// Doctor checks the host environment for embedded development readiness.
type Doctor struct {
	config Config
	runner CommandRunner
	fs     FileSystem
	logger *log.Logger
}

// NewDoctor creates a doctor using the OS command runner and file system.
func NewDoctor(config Config) *Doctor {
	return NewDoctorWithDeps(config, NewOSCommandRunner(), NewOSFileSystem())
}

// NewDoctorWithDeps creates a doctor with custom dependencies.
// This is primarily useful for testing.
func NewDoctorWithDeps(config Config, runner CommandRunner, fs FileSystem) *Doctor {
	return &Doctor{
		config: config,
		runner: runner,
		fs:     fs,
		logger: newLogger(config),
	}
}

// Run performs all environment checks and returns their results.
// Checks never abort the run; a failing check is reported, not raised.
func (d *Doctor) Run(ctx context.Context) []CheckResult {
	return []CheckResult{
		d.checkArduinoCLI(ctx),
		d.checkSerialPorts(),
	}
}

// AllOK reports whether every check in results passed.
func AllOK(results []CheckResult) bool {
	for _, r := range results {
		if !r.OK {
			return false
		}
	}
	return true
}

// checkArduinoCLI verifies the configured arduino-cli binary is on PATH
// and captures its version string.
func (d *Doctor) checkArduinoCLI(ctx context.Context) CheckResult {
	result := CheckResult{Name: "arduino-cli"}

	path, err := exec.LookPath(d.config.ArduinoCLI)
	if err != nil {
		result.Remedy = "Install arduino-cli: https://arduino.github.io/arduino-cli/installation/"
		return result
	}

	result.OK = true
	result.Detail = path

	ctx, cancel := context.WithTimeout(ctx, d.config.DetectTimeout)
	defer cancel()

	// Version lookup is informational; a failure doesn't fail the check
	if output, err := d.runner.Run(ctx, d.config.ArduinoCLI, "version"); err == nil {
		version := strings.TrimSpace(string(output))
		if version != "" {
			result.Detail = fmt.Sprintf("%s (%s)", path, version)
		}
	} else {
		d.logger.Debug("arduino-cli version failed", "err", err)
	}

	return result
}

// checkSerialPorts scans for serial device nodes that look like attached
// boards.
func (d *Doctor) checkSerialPorts() CheckResult {
	result := CheckResult{Name: "serial ports"}

	var ports []string
	for _, pattern := range serialPortPatterns {
		matches, err := d.fs.Glob(pattern)
		if err != nil {
			d.logger.Debug("serial port glob failed", "pattern", pattern, "err", err)
			continue
		}
		ports = append(ports, matches...)
	}

	if len(ports) == 0 {
		result.Remedy = "No serial ports detected. Is a board connected via USB?"
		return result
	}

	result.OK = true
	result.Detail = strings.Join(ports, ", ")
	return result
}
