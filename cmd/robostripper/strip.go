// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grouchyseafowl/robostripper/internal/extract"
	"github.com/grouchyseafowl/robostripper/internal/history"
	"github.com/grouchyseafowl/robostripper/internal/ocr"
	"github.com/grouchyseafowl/robostripper/internal/pipeline"
	"github.com/grouchyseafowl/robostripper/pkg/types"
)

var stripCmd = &cobra.Command{
	Use:   "strip [paths...]",
	Short: "Strip boilerplate from PDF files or directories of PDFs",
	Long: `Strip processes each PDF argument (directories contribute their *.pdf
entries) through extraction, boilerplate removal, and TTS formatting,
writing one .txt file per document to the output directory. Use
--preview to print the result to stdout instead of writing files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().String("output-dir", "StrippedText", "directory for stripped .txt files")
	stripCmd.Flags().String("patterns", "", "YAML file of extra boilerplate patterns")
	stripCmd.Flags().String("ocr-lang", "eng", "Tesseract language for the OCR fallback (\"+\"-separated for multiple)")
	stripCmd.Flags().Bool("preview", false, "print stripped text to stdout instead of writing files")
	stripCmd.Flags().Bool("faithful", false, "keep abbreviations verbatim (no TTS expansion)")
	stripCmd.Flags().Bool("no-header", false, "omit the citation header")

	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	preview, _ := cmd.Flags().GetBool("preview")

	paths, err := pipeline.CollectPDFs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF files found in %v", args)
	}

	var recognizer extract.Recognizer
	if ocr.Available {
		client, err := ocr.New(cfg.Extraction.OCRLanguage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "OCR unavailable: %v\n", err)
		} else {
			defer client.Close()
			recognizer = client
		}
	}

	p, err := pipeline.New(cfg, extract.Open, recognizer)
	if err != nil {
		return err
	}

	if preview {
		return runPreview(p, paths)
	}

	result := p.StripBatch(paths, cfg.Output.Dir, os.Stdout)
	advisePlainScans(result, os.Stderr)
	recordRuns(cfg, result)

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed stripping", result.Failed)
	}
	return nil
}

// runPreview strips each document and prints the text to stdout, separated
// by a banner per file. Nothing is written and no runs are recorded.
func runPreview(p *pipeline.Pipeline, paths []string) error {
	failed := 0
	for _, path := range paths {
		res := p.Strip(path)
		fmt.Printf("==> %s <==\n\n", filepath.Base(path))
		switch res.Status {
		case types.StatusStripped:
			fmt.Println(res.Text)
		case types.StatusEmpty:
			fmt.Println("(nothing left after cleaning)")
		case types.StatusFailed:
			fmt.Printf("(failed: %s)\n", res.Err)
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed stripping", failed)
	}
	return nil
}

// advisePlainScans warns once per batch when pages looked scanned but the
// OCR fallback could not run, with the install hint for the current OS.
func advisePlainScans(result pipeline.BatchResult, w io.Writer) {
	if ocr.Available {
		return
	}
	scanned := 0
	for _, res := range result.Results {
		scanned += len(res.ScannedPages)
	}
	if scanned == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d page(s) appear to be scanned images with little embedded text.\n", scanned)
	fmt.Fprintln(w, "To OCR them, install Tesseract and rebuild with -tags ocr:")
	switch runtime.GOOS {
	case "darwin":
		fmt.Fprintln(w, "  brew install tesseract")
	case "linux":
		fmt.Fprintln(w, "  sudo apt-get install tesseract-ocr libtesseract-dev")
	default:
		fmt.Fprintln(w, "  see https://tesseract-ocr.github.io/tessdoc/Installation.html")
	}
}

// recordRuns appends the batch outcomes to the history store. History is
// best-effort bookkeeping: a store problem warns and never fails the strip.
func recordRuns(cfg types.PipelineConfig, result pipeline.BatchResult) {
	store, err := history.NewStore(cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history disabled: %v\n", err)
		return
	}
	defer store.Close()

	ctx := context.Background()
	for _, res := range result.Results {
		run := types.Run{
			InputPath: res.InputPath,
			Status:    res.Status,
			Pages:     res.Pages,
			OCRPages:  len(res.OCRPages),
		}
		if res.Status == types.StatusStripped {
			run.OutputPath = pipeline.OutputPath(cfg.Output.Dir, res.InputPath)
		}
		if err := store.Record(ctx, run); err != nil {
			fmt.Fprintf(os.Stderr, "history record failed: %v\n", err)
			return
		}
	}
}

// pipelineConfig assembles the stage configuration from flags, falling back
// to config-file values for flags left at their defaults.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	return types.PipelineConfig{
		Extraction: types.ExtractionConfig{
			MinTextLen:  viper.GetInt("extraction.min_text_len"),
			OCRDPI:      viper.GetFloat64("extraction.ocr_dpi"),
			OCRLanguage: stringSetting(cmd, "ocr-lang", "extraction.ocr_language"),
		},
		Cleaning: types.CleaningConfig{
			PatternsFile: stringSetting(cmd, "patterns", "cleaning.patterns_file"),
		},
		Format: types.FormatConfig{
			Faithful: boolSetting(cmd, "faithful", "format.faithful"),
			NoHeader: boolSetting(cmd, "no-header", "format.no_header"),
		},
		Output: types.OutputConfig{
			Dir: stringSetting(cmd, "output-dir", "output.dir"),
		},
		History: historyConfig(),
	}
}

// historyConfig resolves the history store location, defaulting to
// ~/.robostripper.
func historyConfig() types.HistoryConfig {
	dir := viper.GetString("history.dir")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".robostripper")
		} else {
			dir = ".robostripper"
		}
	}
	return types.HistoryConfig{
		Dir:     dir,
		MaxList: viper.GetInt("history.max_list"),
	}
}

// stringSetting returns the flag value when set on the command line, the
// config-file value when present, and the flag default otherwise.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// boolSetting is stringSetting for boolean flags.
func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}
