// Package main provides the CLI entry point for rowbind.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rowbind-go/internal/config"
	"github.com/ukaji3/rowbind-go/internal/logging"
	"github.com/ukaji3/rowbind-go/pkg/rowbind"
	"github.com/ukaji3/rowbind-go/pkg/rowbind/output"
	"github.com/ukaji3/rowbind-go/pkg/rowbind/parser"
)

var (
	outputPath string
	pretty     bool
	fieldSpec  string
	sheet      string
	cellRange  string
	byHeader   bool
	strict     bool
	keepBlank  bool
)

func main() {
	// A .env file is optional; existing environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowbind",
		Short: "Decode spreadsheet rows into typed records",
		Long: `rowbind reads the first sheet of an xlsx or csv file, skips the header row
and decodes every following row into a record by column position.`,
		SilenceUsage: true,
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [input.xlsx|input.csv]",
		Short: "Decode rows into JSON records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], cmd.OutOrStdout())
		},
	}
	decodeCmd.Flags().StringVarP(&fieldSpec, "fields", "f", "", "Field list in column order, e.g. name:text,age:int,active:bool")
	decodeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	decodeCmd.Flags().BoolVar(&pretty, "pretty", cfg.Output.Pretty, "Pretty-print JSON output")
	decodeCmd.Flags().StringVar(&sheet, "sheet", cfg.Decode.Sheet, "Sheet name (default: first sheet)")
	decodeCmd.Flags().StringVar(&cellRange, "range", "", "Cell range or defined name to decode, e.g. B2:D40")
	decodeCmd.Flags().BoolVar(&byHeader, "by-header", strings.EqualFold(cfg.Decode.Mode, string(rowbind.ModeHeader)), "Match fields to header names instead of column positions")
	decodeCmd.Flags().BoolVar(&strict, "strict", cfg.Decode.Strict, "Fail on the first row that cannot be decoded")
	decodeCmd.Flags().BoolVar(&keepBlank, "keep-blank", !cfg.Decode.SkipBlankRows, "Decode blank rows as records with default values")
	_ = decodeCmd.MarkFlagRequired("fields")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Summarize sheets, headers and defined names of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], cmd.OutOrStdout())
		},
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", cfg.Output.Pretty, "Pretty-print JSON output")

	rootCmd.AddCommand(decodeCmd, inspectCmd)
	return rootCmd
}

func runDecode(inputPath string, stdout io.Writer) error {
	d, err := parseFields(fieldSpec)
	if err != nil {
		return err
	}

	mode := rowbind.ModePositional
	if byHeader {
		mode = rowbind.ModeHeader
	}
	skipBlank := !keepBlank

	opts := rowbind.Options{
		Sheet:         sheet,
		Range:         cellRange,
		Mode:          mode,
		SkipBlankRows: &skipBlank,
		StrictRows:    strict,
		Logger:        slog.Default(),
	}

	res, err := rowbind.Load(inputPath, d, opts)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	jsonData, err := output.ToJSON(res, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData, stdout)
}

func runInspect(inputPath string, stdout io.Writer) error {
	info, err := parser.Inspect(inputPath)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	jsonData, err := output.WorkbookInfoToJSON(info, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData, stdout)
}

func writeOutput(jsonData []byte, stdout io.Writer) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(stdout, string(jsonData))
	return err
}
