// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/ostafen/sniff/internal/env"
	"github.com/ostafen/sniff/internal/inspect"
	"github.com/ostafen/sniff/internal/logger"
	"github.com/ostafen/sniff/internal/peek"
	"github.com/ostafen/sniff/pkg/report"
	fmtutil "github.com/ostafen/sniff/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "inspect <file> [file...]",
		Short:        "Inspect files and report their content type",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunInspect,
	}

	cmd.Flags().String("max-peek-size", "1KB", "number of bytes to read from each file")
	cmd.Flags().String("magic-file", "", "YAML file with extra magic signatures")
	cmd.Flags().StringP("output", "o", "", "write an XML report to the given path")
	cmd.Flags().String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")

	return cmd
}

func RunInspect(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, opts.LogLevel)

	registry := inspect.NewRegistry()
	if opts.MagicFile != "" {
		if err := inspect.LoadMagicFile(registry, opts.MagicFile); err != nil {
			return err
		}
		log.Debugf("loaded %d magic signatures", len(registry.Signatures()))
	}

	var (
		reportWriter *report.Writer
		outFile      *os.File
	)
	if opts.ReportFile != "" {
		outFile, err = os.Create(opts.ReportFile)
		if err != nil {
			return err
		}
		defer outFile.Close()

		reportWriter = report.NewWriter(outFile)
		err = reportWriter.WriteHeader(report.Header{
			Version: report.OutputVersion,
			Creator: report.NewCreator(env.AppName, env.Version),
		})
		if err != nil {
			return err
		}
	}

	for _, path := range args {
		buf, err := peek.Peek(path, opts.MaxPeekSize)
		if err != nil {
			return err
		}
		log.Debugf("%s: read %s", path, fmtutil.FormatBytes(int64(len(buf))))

		contentType := registry.Inspect(buf)
		fmt.Printf("%s: %s\n", path, contentType)

		if contentType.IsBinary() {
			exitCode = 1
		}

		if reportWriter != nil {
			err := reportWriter.WriteFile(report.File{
				Path:        path,
				BytesRead:   len(buf),
				ContentType: contentType.String(),
				Text:        contentType.IsText(),
			})
			if err != nil {
				return err
			}
		}
	}

	// A truncated report must not pass for a successful run: surface any
	// error from the final flush instead of dropping it in a defer.
	if reportWriter != nil {
		if err := reportWriter.Close(); err != nil {
			return err
		}
		if err := outFile.Close(); err != nil {
			return err
		}
	}
	return nil
}

type Options struct {
	MaxPeekSize int
	MagicFile   string
	ReportFile  string
	LogLevel    logger.Level
}

func parseOptions(cmd *cobra.Command) (Options, error) {
	peekSize, _ := cmd.Flags().GetString("max-peek-size")
	magicFile, _ := cmd.Flags().GetString("magic-file")
	reportFile, _ := cmd.Flags().GetString("output")
	logLevel, _ := cmd.Flags().GetString("log-level")

	maxPeekSize, err := fmtutil.ParseBytes(peekSize)
	if err != nil {
		return Options{}, fmt.Errorf("invalid max-peek-size: %w", err)
	}
	if maxPeekSize == 0 {
		return Options{}, fmt.Errorf("max-peek-size must be positive")
	}
	if maxPeekSize > math.MaxInt {
		return Options{}, fmt.Errorf("max-peek-size %s too large", peekSize)
	}

	return Options{
		MaxPeekSize: int(maxPeekSize),
		MagicFile:   magicFile,
		ReportFile:  reportFile,
		LogLevel:    logger.ParseLevel(logLevel),
	}, nil
}
