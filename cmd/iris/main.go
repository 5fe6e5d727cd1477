// Command iris is a thin front end over the iris library: it parses an SDL
// schema (and any configured overlays), builds and validates it, and
// reports diagnostics. Grounded on the teacher's cmd/typemux/main.go, but
// replaces its hand-rolled flag.FlagSet/arrayFlags with cobra/pflag and
// routes all real work through the iris package rather than a code
// generator.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iris-graphql/iris"
	"github.com/iris-graphql/iris/internal/config"
	"github.com/iris-graphql/iris/internal/overlay"
	"github.com/iris-graphql/iris/internal/parser"
	"github.com/iris-graphql/iris/internal/source"
)

var (
	configFile     string
	schemaFiles    []string
	overlayFiles   []string
	assumeValid    bool
	assumeValidSDL bool
	introspect     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "iris",
		Short:         "Parse, build, and validate Iris schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Build configuration file (YAML)")
	root.PersistentFlags().StringArrayVar(&schemaFiles, "schema", nil, "Schema file (can be specified multiple times)")
	root.PersistentFlags().StringArrayVar(&overlayFiles, "overlay", nil, "Overlay annotation file (can be specified multiple times)")
	root.PersistentFlags().BoolVar(&assumeValid, "assume-valid", false, "Skip all validation")
	root.PersistentFlags().BoolVar(&assumeValidSDL, "assume-valid-sdl", false, "Skip SDL validation only")
	root.PersistentFlags().BoolVar(&introspect, "introspection", false, "Graft introspection fields onto the Query type")

	root.AddCommand(newParseCmd(), newBuildCmd(), newValidateCmd())
	return root
}

// resolvedConfig merges --config (if given) with the direct flags; flags
// take precedence over a loaded file's matching setting when both are set.
func resolvedConfig() (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.NewConfig()
	}

	if len(schemaFiles) > 0 {
		cfg.Input.Schema = schemaFiles
	}
	if len(overlayFiles) > 0 {
		cfg.Input.Overlay = overlayFiles
	}
	if assumeValid {
		cfg.Build.AssumeValid = true
	}
	if assumeValidSDL {
		cfg.Build.AssumeValidSDL = true
	}
	if introspect {
		cfg.Build.Introspection = true
	}

	if len(cfg.Input.Schema) == 0 {
		return nil, fmt.Errorf("no schema files given: pass --schema or --config")
	}
	return cfg, nil
}

func readSchema(cfg *config.Config) (*iris.Document, error) {
	var sb strings.Builder
	for _, path := range cfg.Input.Schema {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sb.Write(data)
		sb.WriteString("\n")
	}
	src := source.NewNamed(sb.String(), strings.Join(cfg.Input.Schema, ","))
	return parser.ParseDocument(src, parser.Options{NoLocation: cfg.Build.NoLocation})
}

func buildFromConfig(cfg *config.Config) (*iris.Schema, error) {
	doc, err := readSchema(cfg)
	if err != nil {
		return nil, err
	}

	opts := iris.BuildOptions{
		AssumeValid:    cfg.Build.AssumeValid,
		AssumeValidSDL: cfg.Build.AssumeValidSDL,
		Introspection:  cfg.Build.Introspection,
	}
	if len(cfg.Input.Overlay) > 0 {
		ov, err := overlay.LoadAll(cfg.Input.Overlay)
		if err != nil {
			return nil, fmt.Errorf("loading overlay: %w", err)
		}
		opts.Overlay = ov
	}

	return iris.BuildSchema(doc, opts)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse",
		Short: "Parse schema files and print a summary of their definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolvedConfig()
			if err != nil {
				return err
			}
			doc, err := readSchema(cfg)
			if err != nil {
				return printErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d definition(s)\n", len(doc.Definitions))
			return nil
		},
	}
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build a schema from parsed SDL and report errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolvedConfig()
			if err != nil {
				return err
			}
			s, err := buildFromConfig(cfg)
			if err != nil {
				return printErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema built with %d type(s)\n", len(s.TypeMap))
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run SDL and schema validation and print \"ok\" on success",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolvedConfig()
			if err != nil {
				return err
			}
			if _, err := buildFromConfig(cfg); err != nil {
				return printErr(err)
			}
			success := color.New(color.FgGreen)
			success.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

// printErr renders err to stderr in red unless color.NoColor is set (which
// fatih/color does when stdout is not a terminal), plain otherwise,
// and returns it so cobra's error handling still sets a non-zero exit code.
func printErr(err error) error {
	if color.NoColor {
		fmt.Fprintln(os.Stderr, err)
	} else {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
	}
	return err
}
