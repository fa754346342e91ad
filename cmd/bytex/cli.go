package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"bytex/bit"
	"bytex/log"
)

type mode byte

const (
	reprMode       mode = iota // Show byte representations
	bitMode                    // Apply a single bit operation
	dumpMode                   // Dump files
	saveConfigMode             // Write config file
	versionMode                // Show bytex version
)

type (
	CLI struct {
		Repr       Repr          `cmd:"" help:"Show the binary representation of bytes."`
		Get        BitOp         `cmd:"" help:"Print the bit of VALUE at POS."`
		Set        BitOp         `cmd:"" help:"Set the bit of VALUE at POS to 1."`
		Unset      BitOp         `cmd:"" help:"Set the bit of VALUE at POS to 0."`
		Toggle     BitOp         `cmd:"" help:"Flip the bit of VALUE at POS."`
		Dump       Dump          `cmd:"" help:"Dump files as binary, one byte per digit group."`
		SaveConfig SaveConfigCmd `cmd:"" help:"Write the current settings to the config file." name:"save-config"`
		Version    Version       `cmd:"" help:"Show bytex version."`

		Log    logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		JSON   bool       `name:"json" help:"Output one JSON object per line."`
		Group  bool       `help:"Separate nibbles with an underscore."`
		Config string     `help:"${config_help}" type:"path" placeholder:"FILE"`

		mode mode
		op   string
	}

	Repr struct {
		Values []value `arg:"" name:"value" help:"${value_help}"`
	}

	BitOp struct {
		Value value    `arg:"" name:"value" help:"${value_help}"`
		Pos   position `arg:"" name:"pos" help:"Bit position, 0 (LSB) to 7 (MSB)."`
	}

	Dump struct {
		Files     []string `arg:"" name:"file" help:"Files to dump."`
		Width     int      `help:"Number of bytes per line (overrides config)." default:"0"`
		NoOffsets bool     `name:"no-offsets" help:"Do not print offsets."`
	}

	SaveConfigCmd struct{}
	Version       struct{}
)

var vars = kong.Vars{
	"log_help":    "Enable debug logging for specified modules.",
	"config_help": "Configuration file (default: <user config dir>/bytex/config.toml).",
	"value_help":  "Byte value: decimal, 0x hex, 0o octal or 0b binary, underscores allowed.",
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("bytex"),
		kong.Description("Bit manipulation and binary representation of bytes."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars,
	}, options...)
	return kong.New(cli, options...)
}

func parse(parser *kong.Kong, cli *CLI, args []string) error {
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if ctx.Error != nil {
		return ctx.Error
	}

	cmd := strings.Fields(ctx.Command())[0]
	switch cmd {
	case "repr":
		cli.mode = reprMode
	case "get", "set", "unset", "toggle":
		cli.mode = bitMode
		cli.op = cmd
	case "dump":
		cli.mode = dumpMode
	case "save-config":
		cli.mode = saveConfigMode
	case "version":
		cli.mode = versionMode
	default:
		return fmt.Errorf("unexpected command %q", ctx.Command())
	}
	return nil
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	checkf(parse(parser, &cli, args), "failed to parse command line")
	return cli
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if ctx.Command() == "" {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

// value is a byte given on the command line.
type value uint8

func (v *value) UnmarshalText(text []byte) error {
	n, err := strconv.ParseUint(string(text), 0, 8)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return fmt.Errorf("invalid byte value %q: %w", text, err)
	}
	*v = value(n)
	return nil
}

// position is a bit position given on the command line. Out of range
// positions are rejected here, bit functions would panic on them.
type position uint

func (p *position) UnmarshalText(text []byte) error {
	n, err := strconv.ParseUint(string(text), 10, 0)
	if err != nil || n > bit.MaxPosition {
		return fmt.Errorf("invalid bit position %q: must be in [0, %d]", text, bit.MaxPosition)
	}
	*p = position(n)
	return nil
}

// logModMask is a set of log modules given as a comma-separated list.
type logModMask struct {
	mask  log.ModuleMask
	names []string
	set   bool
}

func parseLogModules(names []string) (log.ModuleMask, error) {
	var mask log.ModuleMask
	for _, name := range names {
		switch name = strings.TrimSpace(name); name {
		case "":
		case "all":
			mask |= log.ModuleMaskAll
		case "no":
			mask = log.ModuleMaskNone
		default:
			mod, ok := log.ModuleByName(name)
			if !ok {
				return 0, fmt.Errorf("invalid log module %q", name)
			}
			mask |= mod.Mask()
		}
	}
	return mask, nil
}

func (m *logModMask) UnmarshalText(text []byte) error {
	var names []string
	for _, name := range strings.Split(string(text), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	mask, err := parseLogModules(names)
	if err != nil {
		return err
	}
	m.mask = mask
	m.names = names
	m.set = true
	return nil
}
