// Package main provides the docxkind binary: detection and element scanning
// for DOCX templates.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/docxkind/pkg/docx"
	"github.com/benjaminschreck/docxkind/pkg/docx/ooxml"
)

const (
	Version = "0.1.0"
	appName = "docxkind"
)

type globalOptions struct {
	configPath string
	logLevel   string
	strict     bool
}

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Detect DOCX packages and classify their template elements",
		Long: `docxkind checks whether archives are word-processing packages and
reports the structural elements a template engine cares about: tables and
rows, merge fields in both encodings, bookmarks, hyperlinks and images.`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (TOML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Require [Content_Types].xml to declare the main document part")

	cmd.AddCommand(detectCmd(opts), scanCmd(opts), classifyCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// load resolves configuration: environment first, then the config file, then flags.
func (o *globalOptions) load(cmd *cobra.Command) (*docx.Config, *slog.Logger, error) {
	cfg := docx.ConfigFromEnvironment()
	if o.configPath != "" {
		loaded, err := docx.LoadConfigFile(o.configPath, cfg)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = o.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, docx.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel), nil
}

func detectCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Report whether each file is a word-processing package",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			detector := docx.NewDetector(cfg, logger)

			rejected := 0
			for _, path := range args {
				ok := detectFile(detector, path, logger)
				if !ok {
					rejected++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", path, ok)
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d files are not word-processing packages", rejected, len(args))
			}
			return nil
		},
	}
}

func detectFile(detector *docx.Detector, path string, logger *slog.Logger) bool {
	archive, err := docx.OpenArchiveFile(path)
	if err != nil {
		logger.Debug("not a zip archive", "path", path, "error", err)
		return false
	}
	defer archive.Close()
	return detector.IsWordProcessingPackage(archive)
}

func scanCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Summarize fields, bookmarks, hyperlinks and images in a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			archive, err := docx.OpenArchiveFile(args[0])
			if err != nil {
				return err
			}
			defer archive.Close()

			report, err := docx.NewPackageScanner(cfg, logger).Scan(archive)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json)")
	return cmd
}

func writeReport(w io.Writer, format string, report *docx.PackageReport) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <namespace> <local-name> [qualified-name]",
		Short: "Print the element kind of one element identity",
		Args:  cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			qname := ""
			if len(args) == 3 {
				qname = args[2]
			}
			fmt.Fprintln(cmd.OutOrStdout(), ooxml.Classify(args[0], args[1], qname))
		},
	}
}
