package edesto

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample arduino-cli board list JSON payloads

const boardListOneBoard = `{
  "detected_ports": [
    {
      "matching_boards": [
        {"name": "ESP32 Dev Module", "fqbn": "esp32:esp32:esp32"}
      ],
      "port": {
        "address": "/dev/cu.usbserial-0001",
        "label": "/dev/cu.usbserial-0001",
        "protocol": "serial",
        "protocol_label": "Serial Port (USB)"
      }
    }
  ]
}`

const boardListTwoBoards = `{
  "detected_ports": [
    {
      "matching_boards": [
        {"name": "ESP32 Dev Module", "fqbn": "esp32:esp32:esp32"}
      ],
      "port": {"address": "/dev/cu.usbserial-0001", "protocol": "serial"}
    },
    {
      "matching_boards": [
        {"name": "Arduino Uno", "fqbn": "arduino:avr:uno"}
      ],
      "port": {"address": "/dev/ttyACM0", "protocol": "serial"}
    }
  ]
}`

const boardListNoBoards = `{"detected_ports": []}`

const boardListUnrecognized = `{
  "detected_ports": [
    {
      "matching_boards": [],
      "port": {"address": "/dev/ttyUSB0", "protocol": "serial"}
    }
  ]
}`

// CH340 port with no matching_boards (typical ESP32 via generic USB-serial)
const boardListCH340NoMatch = `{
  "detected_ports": [
    {
      "port": {
        "address": "/dev/cu.usbserial-110",
        "protocol": "serial",
        "protocol_label": "Serial Port (USB)",
        "properties": {"pid": "0x7523", "vid": "0x1A86"}
      }
    }
  ]
}`

// CH340 port with an FQBN match (FQBN takes priority over VID/PID)
const boardListCH340WithFQBN = `{
  "detected_ports": [
    {
      "matching_boards": [
        {"name": "ESP32 Dev Module", "fqbn": "esp32:esp32:esp32"}
      ],
      "port": {
        "address": "/dev/cu.usbserial-110",
        "protocol": "serial",
        "properties": {"pid": "0x7523", "vid": "0x1A86"}
      }
    }
  ]
}`

const boardListUnknownVIDPID = `{
  "detected_ports": [
    {
      "port": {
        "address": "/dev/ttyUSB0",
        "protocol": "serial",
        "properties": {"pid": "0xFFFF", "vid": "0xFFFF"}
      }
    }
  ]
}`

const boardListCH340Lowercase = `{
  "detected_ports": [
    {
      "port": {
        "address": "/dev/cu.usbserial-110",
        "protocol": "serial",
        "properties": {"pid": "0x7523", "vid": "0x1a86"}
      }
    }
  ]
}`

func newTestDetector(output string, err error) (*Detector, *MockCommandRunner) {
	runner := NewMockCommandRunner([]byte(output), err)
	return NewDetectorWithRunner(DefaultConfig(), runner), runner
}

func detectedSlugs(detected []DetectedBoard) []string {
	slugs := make([]string, 0, len(detected))
	for _, d := range detected {
		slugs = append(slugs, d.Board.Slug)
	}
	return slugs
}

func TestDetectOneBoard(t *testing.T) {
	detector, runner := newTestDetector(boardListOneBoard, nil)

	detected := detector.DetectBoards(context.Background())
	require.Len(t, detected, 1)
	assert.Equal(t, "esp32", detected[0].Board.Slug)
	assert.Equal(t, "/dev/cu.usbserial-0001", detected[0].Port)

	// The detector shells out to the configured binary
	require.Len(t, runner.Calls, 1)
	assert.Equal(t, []string{"arduino-cli", "board", "list", "--json"}, runner.Calls[0])
}

func TestDetectTwoBoards(t *testing.T) {
	detector, _ := newTestDetector(boardListTwoBoards, nil)

	detected := detector.DetectBoards(context.Background())
	require.Len(t, detected, 2)
	// Port order from arduino-cli is preserved
	assert.Equal(t, []string{"esp32", "arduino-uno"}, detectedSlugs(detected))
	assert.Equal(t, "/dev/cu.usbserial-0001", detected[0].Port)
	assert.Equal(t, "/dev/ttyACM0", detected[1].Port)
}

func TestDetectNoBoards(t *testing.T) {
	detector, _ := newTestDetector(boardListNoBoards, nil)
	assert.Empty(t, detector.DetectBoards(context.Background()))
}

func TestDetectUnrecognizedBoardSkipped(t *testing.T) {
	detector, _ := newTestDetector(boardListUnrecognized, nil)
	assert.Empty(t, detector.DetectBoards(context.Background()))
}

func TestDetectArduinoCLINotInstalled(t *testing.T) {
	detector, _ := newTestDetector("", exec.ErrNotFound)
	assert.Empty(t, detector.DetectBoards(context.Background()))
}

func TestDetectArduinoCLIFails(t *testing.T) {
	detector, _ := newTestDetector("", errors.New("exit status 1"))
	assert.Empty(t, detector.DetectBoards(context.Background()))
}

func TestDetectMalformedOutput(t *testing.T) {
	detector, _ := newTestDetector("not json at all", nil)
	assert.Empty(t, detector.DetectBoards(context.Background()))
}

func TestDetectVIDPIDFallbackCH340(t *testing.T) {
	detector, _ := newTestDetector(boardListCH340NoMatch, nil)

	detected := detector.DetectBoards(context.Background())
	assert.Equal(t, []string{"esp32", "esp8266", "arduino-nano"}, detectedSlugs(detected))
	for _, d := range detected {
		assert.Equal(t, "/dev/cu.usbserial-110", d.Port)
	}
}

func TestDetectFQBNTakesPriorityOverVIDPID(t *testing.T) {
	detector, _ := newTestDetector(boardListCH340WithFQBN, nil)

	detected := detector.DetectBoards(context.Background())
	require.Len(t, detected, 1)
	assert.Equal(t, "esp32", detected[0].Board.Slug)
}

func TestDetectUnknownVIDPID(t *testing.T) {
	detector, _ := newTestDetector(boardListUnknownVIDPID, nil)
	assert.Empty(t, detector.DetectBoards(context.Background()))
}

func TestDetectVIDPIDCaseInsensitive(t *testing.T) {
	upper, _ := newTestDetector(boardListCH340NoMatch, nil)
	lower, _ := newTestDetector(boardListCH340Lowercase, nil)

	assert.Equal(t,
		detectedSlugs(upper.DetectBoards(context.Background())),
		detectedSlugs(lower.DetectBoards(context.Background())))
}

func TestDetectStateless(t *testing.T) {
	detector, runner := newTestDetector(boardListOneBoard, nil)

	first := detector.DetectBoards(context.Background())
	second := detector.DetectBoards(context.Background())

	assert.Equal(t, first, second)
	// Each invocation performs a fresh external call
	assert.Len(t, runner.Calls, 2)
}

func TestNormalizeHexID(t *testing.T) {
	assert.Equal(t, "1A86", normalizeHexID("0x1a86"))
	assert.Equal(t, "1A86", normalizeHexID("0X1A86"))
	assert.Equal(t, "1A86", normalizeHexID("1a86"))
	assert.Equal(t, "7523", normalizeHexID(" 0x7523 "))
	assert.Equal(t, "", normalizeHexID(""))
}

func TestBridgeChipTableReferencesRegisteredSlugs(t *testing.T) {
	for _, chip := range bridgeChips {
		for _, slug := range chip.Slugs {
			_, err := GetBoard(slug)
			assert.NoError(t, err, "bridge chip %s/%s references %s", chip.VID, chip.PID, slug)
		}
	}
}
