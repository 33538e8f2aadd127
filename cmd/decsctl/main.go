package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/decsctl/internal/commands"
	"github.com/danmuck/decsctl/internal/config"
	"github.com/danmuck/decsctl/internal/export"
	"github.com/danmuck/decsctl/internal/logging"
	"github.com/rs/zerolog/log"
)

const usage = `usage: decsctl [flags] <command> [args]

commands:
  lookup <short>...        print the uri of each short command
  list                     list short commands and their kind
  dump                     print the whole directory (-format text|json|yaml)
  check                    report naming convention issues in every directory
  variants                 list known variants
  init-config [-force] <path>
                           write a config template

flags:
`

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decsctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to a decsctl TOML config")
	variant := fs.String("variant", "", "directory variant: proteox_v1|proteox_v3|teslatron")
	model := fs.String("model", "", "system model: proteox|teslatron")
	version := fs.String("version", "", "DECS version of the system, e.g. 1.4")
	format := fs.String("format", "", "output format for dump: text|json|yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Read(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "decsctl: %v\n", err)
		return 1
	}
	cfg.Overlay(flagLayer(fs, *variant, *model, *version, *format))
	if *version != "" && cfg.Variant != "" {
		fmt.Fprintf(stderr, "decsctl: ignoring -version %s, variant %s is pinned\n", *version, cfg.Variant)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "decsctl: %v\n", err)
		return 1
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logging.SetLevel(lvl)
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "variants":
		for _, v := range commands.Variants() {
			fmt.Fprintln(stdout, v)
		}
		return 0
	case "check":
		return runCheck(stdout)
	case "init-config":
		return runInitConfig(rest, stdout, stderr)
	case "lookup", "list", "dump":
	default:
		fmt.Fprintf(stderr, "decsctl: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	v, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintf(stderr, "decsctl: %v\n", err)
		return 1
	}
	d, err := commands.For(v)
	if err != nil {
		fmt.Fprintf(stderr, "decsctl: %v\n", err)
		return 1
	}
	log.Debug().Str("variant", v.String()).Str("command", cmd).Msg("decsctl")

	switch cmd {
	case "lookup":
		return runLookup(d, rest, stdout, stderr)
	case "list":
		for _, k := range d.Keys() {
			fmt.Fprintf(stdout, "%-20s %s\n", k, commands.Classify(k))
		}
		return 0
	default:
		f, err := cfg.OutputFormat()
		if err != nil {
			fmt.Fprintf(stderr, "decsctl: %v\n", err)
			return 1
		}
		if err := export.Render(stdout, d, f); err != nil {
			fmt.Fprintf(stderr, "decsctl: %v\n", err)
			return 1
		}
		return 0
	}
}

// flagLayer collects explicitly set flags as the top config layer.
func flagLayer(fs *flag.FlagSet, variant, model, version, format string) config.Config {
	var layer config.Config
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			layer.Variant = variant
		case "model":
			layer.Model = model
		case "version":
			layer.DECSVersion = version
		case "format":
			layer.Format = format
		}
	})
	return layer
}

func runLookup(d *commands.Directory, shorts []string, stdout, stderr io.Writer) int {
	if len(shorts) == 0 {
		fmt.Fprintln(stderr, "decsctl: lookup needs at least one short command")
		return 2
	}
	code := 0
	for _, short := range shorts {
		addr, err := d.Lookup(short)
		if err != nil {
			if errors.Is(err, commands.ErrUnknownCommand) {
				fmt.Fprintf(stderr, "decsctl: %s has no command %q\n", d.Variant(), short)
			} else {
				fmt.Fprintf(stderr, "decsctl: %v\n", err)
			}
			code = 1
			continue
		}
		fmt.Fprintln(stdout, addr)
	}
	return code
}

func runCheck(stdout io.Writer) int {
	code := 0
	for _, d := range commands.Directories() {
		issues := commands.CheckNaming(d)
		if len(issues) == 0 {
			fmt.Fprintf(stdout, "%s: ok (%d commands)\n", d.Variant(), d.Len())
			continue
		}
		code = 1
		for _, issue := range issues {
			fmt.Fprintln(stdout, issue)
		}
	}
	return code
}

func runInitConfig(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("init-config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "decsctl: init-config needs exactly one path")
		return 2
	}
	path := fs.Arg(0)
	if err := config.WriteTemplate(path, *force); err != nil {
		fmt.Fprintf(stderr, "decsctl: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote config template to %s\n", path)
	return 0
}
