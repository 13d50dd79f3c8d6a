// Command converto converts a PDF's text content into a single .txt file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tsawler/converto"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "converto: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outputTarget  string
		overwrite     bool
		password      string
		ocrMode       string
		ocrLang       string
		tesseractPath string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "converto input.pdf",
		Short: "Convert a PDF to a single plain-text file",
		Long: `Converto extracts all text content from a PDF into one UTF-8 .txt file.
Embedded text is used by default; pages without a text layer can be run
through Tesseract OCR with --ocr auto, or OCR can be forced for every
page with --ocr always.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			mode, err := converto.ParseMode(ocrMode)
			if err != nil {
				return err
			}

			conv := converto.Open(args[0]).
				Output(outputTarget).
				Password(password).
				OCRMode(mode).
				OCRLanguage(ocrLang).
				TesseractPath(tesseractPath)
			if overwrite {
				conv = conv.Overwrite()
			}

			path, pages, err := conv.Convert(cmd.Context())
			if err != nil {
				return err
			}

			ocrPages := 0
			for _, p := range pages {
				if p.UsedOCR {
					ocrPages++
				}
			}
			logger.Debug("conversion finished", "pages", len(pages), "ocr_pages", ocrPages)

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputTarget, "output", "o", "", "Output file or directory (defaults to <input stem>.txt next to the input)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Allow overwriting an existing output file")
	cmd.Flags().StringVar(&password, "password", "", "Password for encrypted PDFs")
	cmd.Flags().StringVar(&ocrMode, "ocr", "never", "OCR mode: never, auto (fall back on pages without text), or always")
	cmd.Flags().StringVar(&ocrLang, "ocr-lang", "eng", "Tesseract language(s), e.g. 'eng' or 'eng+hin'")
	cmd.Flags().StringVar(&tesseractPath, "tesseract-path", "", "Full path to the tesseract executable if not on PATH")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	return cmd
}
