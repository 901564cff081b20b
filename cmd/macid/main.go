package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/slashdevops/macid"
	"github.com/slashdevops/macid/internal/config"
	"github.com/slashdevops/macid/internal/logging"
	"github.com/slashdevops/macid/internal/version"
)

const applicationName = "macid"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes the CLI and returns the process exit status. A non-nil
// querier replaces the host's adapters.
func run(args []string, stdout, stderr io.Writer, querier macid.Querier) int {
	flags := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	flags.SetOutput(stderr)

	// Filters
	flags.Bool("exclude-non-physical", false, "Exclude virtual, VPN, and container adapters")
	flags.Bool("exclude-wireless", false, "Exclude 802.11 adapters (modern schema only)")

	// Output options
	flags.Bool("json", false, "Output result as JSON")
	flags.Bool("diagnostics", false, "Show which schema served the addresses and what was filtered")

	// Runtime options
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-file", "", "Also write JSON logs to this file, rotated")
	flags.Duration("timeout", config.DefaultTimeout, "Bound the whole adapter query")
	configFile := flags.String("config", "", "Read options from a config file (json, yaml, toml)")

	// Info flags
	versionFlag := flags.Bool("version", false, "Show version information")
	versionLongFlag := flags.Bool("version.long", false, "Show detailed version information")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "macid - Derive a device-identifier component from network adapter addresses\n\n")
		fmt.Fprintf(stderr, "Usage:\n  macid [flags]\n\nFlags:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n  %s_<FLAG> overrides the config file, e.g. %s_EXCLUDE_WIRELESS=true\n", config.EnvPrefix, config.EnvPrefix)
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  macid                                               All adapters\n")
		fmt.Fprintf(stderr, "  macid --exclude-non-physical --exclude-wireless     Wired hardware only\n")
		fmt.Fprintf(stderr, "  macid --json --diagnostics                          JSON with diagnostics\n")
		fmt.Fprintf(stderr, "  macid --version                                     Show version\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(stderr, "%s: %v\n", applicationName, err)
		flags.Usage()

		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.Short(applicationName))
		return 0
	}

	if *versionLongFlag {
		fmt.Fprintln(stdout, version.Long(applicationName))
		return 0
	}

	cfg, err := config.Load(flags, *configFile)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", applicationName, err)
		return 1
	}

	logger := logging.New(stderr, cfg.Debug, cfg.LogFile)
	defer func() { _ = logger.Sync() }()

	component := macid.New().WithLogger(logging.Slog(logger))
	if querier != nil {
		component.WithQuerier(querier)
	}
	if cfg.ExcludeNonPhysical {
		component.WithExcludeNonPhysical()
	}
	if cfg.ExcludeWireless {
		component.WithExcludeWireless()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	result, err := component.Collect(ctx)
	if err != nil {
		logger.Error("failed to collect adapter addresses", zap.Error(err))
		return 1
	}

	if cfg.JSON {
		output := map[string]any{
			"name":      component.Name(),
			"value":     result.Value(),
			"addresses": addressList(result),
		}
		if cfg.Diagnostics {
			output["diagnostics"] = formatDiagnostics(result)
		}

		if err := printJSON(stdout, output); err != nil {
			logger.Error("failed to encode JSON", zap.Error(err))
			return 1
		}

		return 0
	}

	fmt.Fprintln(stdout, result.Value())

	if cfg.Diagnostics {
		printDiagnostics(stderr, result)
	}

	return 0
}

// addressList never returns nil, so JSON output shows an empty array.
func addressList(result *macid.Result) []string {
	if result.Addresses == nil {
		return []string{}
	}

	return result.Addresses
}

func printDiagnostics(w io.Writer, result *macid.Result) {
	fmt.Fprintln(w, "\nDiagnostics:")
	fmt.Fprintf(w, "  Schema: %s\n", result.Schema)
	if result.Fallback != nil {
		fmt.Fprintf(w, "  Fallback: %v\n", result.Fallback)
	}
	fmt.Fprintf(w, "  Enumerated: %d\n", result.Counts.Enumerated)
	fmt.Fprintf(w, "  Excluded: %d\n", result.Counts.Excluded)
	fmt.Fprintf(w, "  Missing address: %d\n", result.Counts.Missing)
}

func formatDiagnostics(result *macid.Result) map[string]any {
	diag := map[string]any{
		"schema":     result.Schema.String(),
		"enumerated": result.Counts.Enumerated,
		"excluded":   result.Counts.Excluded,
		"missing":    result.Counts.Missing,
	}

	if result.Fallback != nil {
		diag["fallback"] = result.Fallback.Error()
	}

	return diag
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
