// Package main provides the CLI entry point for the edesto tool
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/edesto-dev/edesto/pkg/edesto"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edesto",
	Short: "Use AI coding assistants for embedded development",
	Long:  "Generates a board-aware CLAUDE.md (and .cursorrules) so an AI coding assistant knows your board's commands, pins and pitfalls, and detects locally connected boards via arduino-cli.",
}

var (
	initBoard string
	initPort  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a CLAUDE.md for your board",
	Long:  "Generate a CLAUDE.md tailored to a board and serial port. When --board or --port is omitted, a single unambiguously detected board fills them in.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		config := edesto.DefaultConfig()

		board, port, err := resolveBoardAndPort(ctx, config)
		if err != nil {
			return err
		}

		gen := edesto.NewGenerator(config)
		if gen.OutputExists() && !initForce {
			if !confirm(cmd, fmt.Sprintf("%s already exists. Overwrite?", config.ClaudeFile)) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		written, err := gen.Generate(board, port)
		if err != nil {
			return fmt.Errorf("failed to generate instructions: %w", err)
		}

		fmt.Printf("%s Generated %s for %s on %s\n",
			SuccessStyle.Render("✅"), written[0], board.Name, CmdStyle.Render(port))
		if len(written) > 1 {
			fmt.Println(SubtitleStyle.Render(fmt.Sprintf("Also created %s for Cursor users.", written[1])))
		}
		return nil
	},
}

// resolveBoardAndPort fills missing --board/--port flags from detection.
// Detection only substitutes when it is unambiguous; multiple candidates
// are listed and the user is asked to pass explicit flags.
func resolveBoardAndPort(ctx context.Context, config edesto.Config) (*edesto.Board, string, error) {
	board := initBoard
	port := initPort

	if board == "" || port == "" {
		detected := edesto.NewDetector(config).DetectBoards(ctx)
		switch len(detected) {
		case 0:
			if board == "" {
				return nil, "", fmt.Errorf("--board is required (no boards detected). Use 'edesto boards' to list supported boards")
			}
			return nil, "", fmt.Errorf("--port is required (no boards detected). Check 'ls /dev/tty*' or 'ls /dev/cu.*' for your serial port")
		case 1:
			if board == "" {
				board = detected[0].Board.Slug
				fmt.Printf("Detected %s on %s\n", detected[0].Board.Name, detected[0].Port)
			}
			if port == "" {
				port = detected[0].Port
			}
		default:
			fmt.Println("Multiple board candidates detected:")
			for _, d := range detected {
				fmt.Printf("  %s  %s\n", CmdStyle.Render(d.Board.Slug), d.Port)
			}
			return nil, "", fmt.Errorf("ambiguous detection: pass --board and --port explicitly")
		}
	}

	b, err := edesto.GetBoard(board)
	if err != nil {
		return nil, "", err
	}
	return b, port, nil
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List supported boards",
	Run: func(cmd *cobra.Command, args []string) {
		boards := edesto.ListBoards()
		fmt.Println(TitleStyle.Render(fmt.Sprintf("Supported boards (%d):", len(boards))))
		fmt.Println()
		fmt.Printf("  %-20s %-30s %s\n", "Slug", "Name", "FQBN")
		fmt.Printf("  %-20s %-30s %s\n", strings.Repeat("─", 20), strings.Repeat("─", 30), strings.Repeat("─", 40))
		// Plain cells keep column alignment; ANSI-styled cells would not
		// pad correctly under %-20s.
		for _, b := range boards {
			fmt.Printf("  %-20s %-30s %s\n", b.Slug, b.Name, b.FQBN)
		}
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect connected boards",
	Long:  "Probe serial ports via arduino-cli and map detected hardware to supported boards. Generic USB-serial bridges can match several candidate boards on the same port.",
	Run: func(cmd *cobra.Command, args []string) {
		config := edesto.DefaultConfig()
		detected := edesto.NewDetector(config).DetectBoards(context.Background())

		if len(detected) == 0 {
			fmt.Println("No boards detected. Is a board connected via USB?")
			fmt.Println(SubtitleStyle.Render("Run 'edesto doctor' to check your environment."))
			return
		}

		fmt.Println(TitleStyle.Render("Detected boards:"))
		for _, d := range detected {
			fmt.Printf("  %-14s %-30s %s\n", d.Board.Slug, d.Board.Name, d.Port)
		}
		fmt.Println()
		fmt.Println(SubtitleStyle.Render("Run 'edesto init --board <slug> --port <port>' to generate instructions."))
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check your environment for embedded development",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := edesto.DefaultConfig()
		results := edesto.NewDoctor(config).Run(context.Background())

		for _, r := range results {
			if r.OK {
				fmt.Printf("%s %s: %s\n", SuccessStyle.Render("[OK]"), r.Name, r.Detail)
			} else {
				fmt.Printf("%s %s: %s\n", ErrorStyle.Render("[!!]"), r.Name, r.Remedy)
			}
		}

		fmt.Println()
		if !edesto.AllOK(results) {
			fmt.Println(ErrorStyle.Render("Some checks failed. Fix the issues above before running 'edesto init'."))
			return fmt.Errorf("environment checks failed")
		}
		fmt.Println(SuccessStyle.Render("All checks passed. Ready for embedded development."))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initBoard, "board", "", "Board slug (e.g. esp32, arduino-uno). Use 'edesto boards' to list.")
	initCmd.Flags().StringVar(&initPort, "port", "", "Serial port (e.g. /dev/ttyUSB0, /dev/cu.usbserial-0001).")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files without asking")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// fang wraps cobra execution with styled help/errors; version is passed
	// through fang since it overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
