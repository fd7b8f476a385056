package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	commandShow    = "show"
	commandInspect = "inspect"
	commandPurge   = "purge"
	commandWatch   = "watch"
	commandInit    = "init"
)

// defaultInitPath is where init writes when no -config is given.
const defaultInitPath = "config.yaml"

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

type AppFlags struct {
	GlobalConfigFile string
	Output           string
	Yes              bool
	Command          string
}

// parseFlags accepts flags both before and after the command, so
// "storeconf purge -yes" and "storeconf -yes purge" are equivalent.
func parseFlags(args []string, out io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("storeconf", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: storeconf [flags] [show|inspect|purge|watch|init]")
		fs.PrintDefaults()
	}

	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	output := fs.String("output", "", "Output format: text, yaml or json")
	outputAlias := fs.String("o", "", "Alias for -output")

	yes := fs.Bool("yes", false, "Confirm destructive commands: purge, or init over an existing file")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{Command: commandShow, Output: outputText}

	if fs.NArg() > 0 {
		flags.Command = fs.Arg(0)
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return AppFlags{}, err
		}
		if fs.NArg() > 0 {
			return AppFlags{}, fmt.Errorf("unexpected arguments after %q: %v", flags.Command, fs.Args())
		}
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *output != "" {
		flags.Output = *output
	} else if *outputAlias != "" {
		flags.Output = *outputAlias
	}

	flags.Yes = *yes

	switch flags.Command {
	case commandShow, commandInspect, commandPurge, commandWatch, commandInit:
	default:
		return AppFlags{}, fmt.Errorf("unknown command %q", flags.Command)
	}

	switch flags.Output {
	case outputText, outputYAML, outputJSON:
	default:
		return AppFlags{}, fmt.Errorf("unknown output format %q (expected text, yaml or json)", flags.Output)
	}

	return flags, nil
}
