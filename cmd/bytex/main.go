package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"bytex/bit"
	"bytex/log"
)

func main() {
	cli := parseArgs(os.Args[1:])
	checkf(run(cli, os.Stdout), "%s", cli.mode)
}

func (m mode) String() string {
	switch m {
	case reprMode:
		return "repr"
	case bitMode:
		return "bit operation"
	case dumpMode:
		return "dump"
	case saveConfigMode:
		return "save-config"
	case versionMode:
		return "version"
	}
	return "unknown"
}

func configPath(cli *CLI) string {
	if cli.Config != "" {
		return cli.Config
	}
	return defaultConfigPath()
}

// settings merges the config file with the command line, flags winning.
func settings(cli *CLI, cfg Config) (Config, error) {
	if cli.Log.set {
		log.DisableDebugModules(log.ModuleMaskAll)
		log.EnableDebugModules(cli.Log.mask)
		cfg.Log = cli.Log.names
	} else {
		mask, err := parseLogModules(cfg.Log)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		log.EnableDebugModules(mask)
	}

	cfg.Output.JSON = cfg.Output.JSON || cli.JSON
	cfg.Output.Group = cfg.Output.Group || cli.Group
	if cli.Dump.Width != 0 {
		cfg.Dump.Width = cli.Dump.Width
	}
	if cli.Dump.NoOffsets {
		cfg.Dump.Offsets = false
	}
	return cfg, nil
}

func run(cli CLI, w io.Writer) error {
	// Enable logging early so that config loading can be traced.
	if cli.Log.set {
		log.EnableDebugModules(cli.Log.mask)
	}

	path := configPath(&cli)
	cfg, err := settings(&cli, LoadConfigOrDefault(path))
	if err != nil {
		return err
	}

	p := &printer{w: w, json: cfg.Output.JSON, group: cfg.Output.Group}

	switch cli.mode {
	case reprMode:
		for _, v := range cli.Repr.Values {
			if err := p.value(uint8(v)); err != nil {
				return err
			}
		}
		return nil

	case bitMode:
		return runBitOp(p, cli.op, cli.bitOp())

	case dumpMode:
		return dumpFiles(p, cli.Dump.Files, cfg.Dump.Width, cfg.Dump.Offsets)

	case saveConfigMode:
		if path == "" {
			return errors.New("no config path, use --config")
		}
		if err := SaveConfig(path, cfg); err != nil {
			return err
		}
		log.ModConfig.InfoZ("config saved").String("path", path).End()
		_, err := fmt.Fprintln(w, path)
		return err

	case versionMode:
		_, err := fmt.Fprintln(w, "bytex", version())
		return err
	}

	return fmt.Errorf("unexpected mode %d", cli.mode)
}

func (cli *CLI) bitOp() BitOp {
	switch cli.op {
	case "get":
		return cli.Get
	case "set":
		return cli.Set
	case "unset":
		return cli.Unset
	}
	return cli.Toggle
}

func runBitOp(p *printer, op string, args BitOp) error {
	v, pos := uint8(args.Value), uint(args.Pos)
	log.ModBit.DebugZ(op).Hex8("val", v).Uint("pos", pos).End()

	switch op {
	case "get":
		return p.bit(v, pos, bit.Get(v, pos))
	case "set":
		bit.Set(&v, pos)
	case "unset":
		bit.Unset(&v, pos)
	case "toggle":
		bit.Toggle(&v, pos)
	default:
		return fmt.Errorf("unknown bit operation %q", op)
	}
	return p.value(v)
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
