package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonscout/internal/config"
	"github.com/mcncl/jsonscout/internal/errors"
	"github.com/mcncl/jsonscout/internal/formatter"
	"github.com/mcncl/jsonscout/internal/scanner"
	"github.com/mcncl/jsonscout/internal/searcher"
	"github.com/mcncl/jsonscout/internal/terms"
)

// CLI defines the command-line interface
var CLI struct {
	Path          string   `arg:"" help:"Path to a JSON file or a directory to scan recursively." type:"path"`
	Keys          string   `help:"Comma-separated list of terms (e.g. 'name,email,token')." xor:"source"`
	Key           []string `help:"Repeatable single term (e.g. --key token --key email)."`
	KeysFile      string   `help:"Path to a file containing terms (JSON array or newline/comma-separated)." xor:"source" type:"path"`
	CaseSensitive bool     `help:"Enable case-sensitive matching (default: case-insensitive)."`
	KeysOnly      bool     `help:"Match only on keys." xor:"mode"`
	ValuesOnly    bool     `help:"Match only on values." xor:"mode"`
	Extensions    string   `help:"File extensions to scan in directories (comma-separated). Default: json"`
	Output        string   `help:"Output format: pretty or json. Default: pretty"`
	Workers       int      `help:"Number of files scanned concurrently. Default: 1"`
	Config        string   `help:"Path to a YAML config file with scan defaults." type:"path"`
	Version       bool     `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonscout"),
		kong.Description("Search JSON files for user-provided keywords ('keys')."),
		kong.UsageOnError(),
	)

	// --version must work without the positional path argument.
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("jsonscout version %s\n", Version)
			return
		}
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// kong.UsageOnError() has already printed usage.
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonscout --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	// The path must exist before anything else, including the
	// interactive prompt.
	if _, err := os.Stat(CLI.Path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewConfigError("path not found: "+CLI.Path, errors.ErrPathNotFound)
		}
		return errors.NewInputError("failed to stat "+CLI.Path, err)
	}

	rawTerms, err := collectTerms()
	if err != nil {
		return err
	}
	if len(rawTerms) == 0 {
		rawTerms = promptForTerms()
	}
	if len(rawTerms) == 0 {
		return errors.NewConfigError("no search terms provided", errors.ErrNoTerms)
	}

	s := &scanner.Scanner{
		Root:  CLI.Path,
		Terms: terms.Normalize(rawTerms, CLI.CaseSensitive),
		Options: searcher.Options{
			CaseSensitive: CLI.CaseSensitive,
			KeysOnly:      CLI.KeysOnly,
			ValuesOnly:    CLI.ValuesOnly,
		},
		Extensions: terms.Split(CLI.Extensions),
		Workers:    CLI.Workers,
	}

	result, err := s.Scan(context.Background())
	if err != nil {
		return err
	}

	f := formatter.NewFormatter()
	if CLI.Output == "json" {
		return f.JSON(os.Stdout, result)
	}
	return f.Pretty(os.Stdout, result)
}

// applyFlags layers explicit flags over config-file defaults.
func applyFlags(cfg *config.Config) error {
	if CLI.Extensions == "" {
		CLI.Extensions = cfg.Extensions
	}
	if CLI.Output == "" {
		CLI.Output = cfg.Output
	}
	if CLI.Output != "pretty" && CLI.Output != "json" {
		return errors.NewConfigError(
			fmt.Sprintf("invalid output mode '%s' (want 'pretty' or 'json')", CLI.Output),
			nil,
		)
	}
	if CLI.Workers == 0 {
		CLI.Workers = cfg.Workers
	}
	if CLI.Workers < 1 {
		return errors.NewConfigError(
			fmt.Sprintf("workers must be at least 1, got %d", CLI.Workers),
			nil,
		)
	}
	if cfg.CaseSensitive {
		CLI.CaseSensitive = true
	}
	return nil
}

// collectTerms gathers raw terms from every flag source.
func collectTerms() ([]string, error) {
	var raw []string
	if CLI.Keys != "" {
		raw = append(raw, terms.Split(CLI.Keys)...)
	}
	for _, t := range CLI.Key {
		t = strings.TrimSpace(t)
		if t != "" {
			raw = append(raw, t)
		}
	}
	if CLI.KeysFile != "" {
		fromFile, err := terms.LoadFile(CLI.KeysFile)
		if err != nil {
			return nil, err
		}
		raw = append(raw, fromFile...)
	}
	return raw, nil
}

// promptForTerms asks on stdin for a comma-separated term list when
// no flag supplied any. EOF or a blank line yields no terms.
func promptForTerms() []string {
	fmt.Fprint(os.Stderr, "Enter comma-separated search keys: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil
	}
	return terms.Split(strings.TrimSpace(line))
}
