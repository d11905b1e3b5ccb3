package edesto

// Generator renders the instructions document and writes it to the
// configured output files.
type Generator struct {
	config Config
	fs     FileSystem
}

// NewGenerator creates a generator backed by the OS file system.
//
// Example:
//
//	config := DefaultConfig()
//	gen := NewGenerator(config)
//	board, err := GetBoard("esp32")
//	if err != nil {
//		log.Fatal(err)
//	}
//	written, err := gen.Generate(board, "/dev/ttyUSB0")
func NewGenerator(config Config) *Generator {
	return NewGeneratorWithFS(config, NewOSFileSystem())
}

// NewGeneratorWithFS creates a generator with a custom file system.
// This is primarily useful for testing.
func NewGeneratorWithFS(config Config, fs FileSystem) *Generator {
	return &Generator{config: config, fs: fs}
}

// OutputExists reports whether the primary instructions file already
// exists. The CLI uses this to prompt before overwriting.
func (g *Generator) OutputExists() bool {
	return g.fs.FileExists(g.config.ClaudeFile)
}

// Generate renders the instructions for board and port and writes them to
// the configured Claude file, mirroring the identical content to the
// cursor-rules file unless disabled. Returns the paths written.
func (g *Generator) Generate(board *Board, port string) ([]string, error) {
	content, err := RenderInstructions(board, port)
	if err != nil {
		return nil, err
	}

	written := []string{g.config.ClaudeFile}
	if err := g.fs.WriteFile(g.config.ClaudeFile, []byte(content)); err != nil {
		return nil, &GenerateError{Op: "write", Path: g.config.ClaudeFile, Err: err}
	}

	if g.config.WriteCursorRules {
		if err := g.fs.WriteFile(g.config.CursorFile, []byte(content)); err != nil {
			return nil, &GenerateError{Op: "write", Path: g.config.CursorFile, Err: err}
		}
		written = append(written, g.config.CursorFile)
	}

	return written, nil
}
