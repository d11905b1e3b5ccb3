package edesto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWritesBothFiles(t *testing.T) {
	fs := NewMockFileSystem()
	config := DefaultConfig()
	gen := NewGeneratorWithFS(config, fs)

	board, err := GetBoard("esp32")
	require.NoError(t, err)

	written, err := gen.Generate(board, "/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, []string{"CLAUDE.md", ".cursorrules"}, written)

	claude, err := fs.ReadFile("CLAUDE.md")
	require.NoError(t, err)
	cursor, err := fs.ReadFile(".cursorrules")
	require.NoError(t, err)

	// The cursor rules mirror the instructions exactly
	assert.Equal(t, claude, cursor)
	assert.Contains(t, string(claude), "esp32:esp32:esp32")
	assert.Contains(t, string(claude), "/dev/ttyUSB0")
}

func TestGenerateCursorRulesDisabled(t *testing.T) {
	fs := NewMockFileSystem()
	config := DefaultConfig()
	config.WriteCursorRules = false
	gen := NewGeneratorWithFS(config, fs)

	board, err := GetBoard("esp32")
	require.NoError(t, err)

	written, err := gen.Generate(board, "/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, []string{"CLAUDE.md"}, written)
	assert.False(t, fs.FileExists(".cursorrules"))
}

func TestGenerateCustomPaths(t *testing.T) {
	fs := NewMockFileSystem()
	config := DefaultConfig()
	config.ClaudeFile = "docs/CLAUDE.md"
	config.CursorFile = "docs/.cursorrules"
	gen := NewGeneratorWithFS(config, fs)

	board, err := GetBoard("arduino-uno")
	require.NoError(t, err)

	written, err := gen.Generate(board, "/dev/ttyACM0")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/CLAUDE.md", "docs/.cursorrules"}, written)
	assert.True(t, fs.FileExists("docs/CLAUDE.md"))
}

func TestOutputExists(t *testing.T) {
	fs := NewMockFileSystem()
	gen := NewGeneratorWithFS(DefaultConfig(), fs)

	assert.False(t, gen.OutputExists())

	require.NoError(t, fs.WriteFile("CLAUDE.md", []byte("existing content")))
	assert.True(t, gen.OutputExists())
}

func TestGenerateOverwritesExisting(t *testing.T) {
	fs := NewMockFileSystem()
	gen := NewGeneratorWithFS(DefaultConfig(), fs)
	require.NoError(t, fs.WriteFile("CLAUDE.md", []byte("existing content")))

	board, err := GetBoard("esp32")
	require.NoError(t, err)

	_, err = gen.Generate(board, "/dev/ttyUSB0")
	require.NoError(t, err)

	content, err := fs.ReadFile("CLAUDE.md")
	require.NoError(t, err)
	assert.Contains(t, string(content), "esp32:esp32:esp32")
	assert.NotContains(t, string(content), "existing content")
}

func TestGenerateAllBoards(t *testing.T) {
	for _, board := range ListBoards() {
		t.Run(board.Slug, func(t *testing.T) {
			fs := NewMockFileSystem()
			gen := NewGeneratorWithFS(DefaultConfig(), fs)

			b, err := GetBoard(board.Slug)
			require.NoError(t, err)

			_, err = gen.Generate(b, "/dev/ttyUSB0")
			require.NoError(t, err)
			assert.True(t, fs.FileExists("CLAUDE.md"))
		})
	}
}
