// Package main provides the CLI entry point for pricetag-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kvels/pricetag-go/pkg/pricetag"
	"github.com/kvels/pricetag-go/pkg/pricetag/store"
)

var (
	outputPath   string
	format       string
	templatePath string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pricetag [input.xlsx]",
		Short: "Generate printable price tags from an inventory workbook",
		Long: `pricetag-go reads product rows from an xlsx workbook, lays them out
as fixed-size price tags on A4 pages, and writes the result as an xlsx
worksheet or a docx document.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "tags.xlsx", "Output file path")
	rootCmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx, docx")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "Template file path (default: beside the executable)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var outFormat pricetag.Format
	switch format {
	case "xlsx":
		outFormat = pricetag.FormatXLSX
	case "docx":
		outFormat = pricetag.FormatDOCX
	default:
		return fmt.Errorf("invalid format: %s (must be xlsx or docx)", format)
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer l.Sync()
		logger = l
	}

	path := templatePath
	if path == "" {
		path = store.DefaultPath()
	}
	tpl, err := store.Load(path)
	if err != nil {
		// A broken template file is not fatal; fall back to defaults.
		logger.Warn("template load failed, using defaults",
			zap.String("path", path), zap.Error(err))
		tpl = nil
	}

	opts := pricetag.Options{
		Format:   outFormat,
		Template: tpl,
		Logger:   logger,
	}

	if err := pricetag.Run(inputPath, outputPath, opts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}
