package edesto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInstructionsESP32(t *testing.T) {
	board, err := GetBoard("esp32")
	require.NoError(t, err)

	content, err := RenderInstructions(board, "/dev/ttyUSB0")
	require.NoError(t, err)

	assert.Contains(t, content, "# Embedded Development: ESP32")
	assert.Contains(t, content, "esp32:esp32:esp32")
	assert.Contains(t, content, "/dev/ttyUSB0")
	assert.Contains(t, content, "## Development Loop")
	assert.Contains(t, content, "arduino-cli compile --fqbn esp32:esp32:esp32 .")
	assert.Contains(t, content, "arduino-cli upload --fqbn esp32:esp32:esp32 --port /dev/ttyUSB0 .")
	assert.Contains(t, content, "Serial.begin(115200)")
	assert.Contains(t, content, "serial.Serial('/dev/ttyUSB0', 115200, timeout=1)")
}

func TestRenderInstructionsIncludesCapabilities(t *testing.T) {
	board, err := GetBoard("esp32")
	require.NoError(t, err)

	content, err := RenderInstructions(board, "/dev/ttyUSB0")
	require.NoError(t, err)

	assert.Contains(t, content, "### Capabilities")
	assert.Contains(t, content, "#include <WiFi.h>")
	assert.Contains(t, content, "Http Server: `#include <WebServer.h>`")
}

func TestRenderInstructionsBoardInfo(t *testing.T) {
	board, err := GetBoard("esp32")
	require.NoError(t, err)

	content, err := RenderInstructions(board, "/dev/ttyUSB0")
	require.NoError(t, err)

	assert.Contains(t, content, "### Pin Reference")
	assert.Contains(t, content, "GPIO 2: Onboard LED")
	assert.Contains(t, content, "### Common Pitfalls")
	assert.Contains(t, content, "ADC2 pins do not work when WiFi is active")
}

func TestRenderInstructionsNoIncludes(t *testing.T) {
	board, err := GetBoard("arduino-uno")
	require.NoError(t, err)

	content, err := RenderInstructions(board, "/dev/ttyACM0")
	require.NoError(t, err)

	// Boards without include directives get no Capabilities section,
	// but still get pins and pitfalls
	assert.NotContains(t, content, "### Capabilities")
	assert.Contains(t, content, "### Pin Reference")
	assert.Contains(t, content, "### Common Pitfalls")
	assert.Contains(t, content, "Serial.begin(9600)")
}

func TestRenderInstructionsAllBoards(t *testing.T) {
	for _, board := range ListBoards() {
		t.Run(board.Slug, func(t *testing.T) {
			content, err := RenderInstructions(&board, "/dev/ttyUSB0")
			require.NoError(t, err)
			assert.Contains(t, content, board.Name)
			assert.Contains(t, content, board.FQBN)
			assert.NotEmpty(t, content)
		})
	}
}

func TestRenderInstructionsStableOutput(t *testing.T) {
	board, err := GetBoard("esp32")
	require.NoError(t, err)

	first, err := RenderInstructions(board, "/dev/ttyUSB0")
	require.NoError(t, err)
	second, err := RenderInstructions(board, "/dev/ttyUSB0")
	require.NoError(t, err)

	// Include ordering must not depend on map iteration order
	assert.Equal(t, first, second)
}

func TestTitleizeCapability(t *testing.T) {
	assert.Equal(t, "Wifi", titleizeCapability("wifi"))
	assert.Equal(t, "Http Server", titleizeCapability("http_server"))
	assert.Equal(t, "Can Bus", titleizeCapability("can_bus"))
}

func TestRenderInstructionsEndsWithNewline(t *testing.T) {
	board, err := GetBoard("esp32")
	require.NoError(t, err)

	content, err := RenderInstructions(board, "/dev/ttyUSB0")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(content, "\n"))
}
