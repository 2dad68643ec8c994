package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jesperkha/minic/config"
	"github.com/jesperkha/minic/logs"
)

func main() {
	configPath := flag.String("config", "", "cue config file, defaults to ./"+config.DefaultFile+" if present")
	emit := flag.String("emit", "", "output to emit: tokens, ast or asm")
	run := flag.Bool("run", false, "execute the program and print the final value of each variable")
	output := flag.String("o", "", "write the asm listing to file instead of stdout")
	labelPrefix := flag.String("label-prefix", "", "prefix of generated labels")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: load config: %s\n", err)
		os.Exit(1)
	}

	// Flags that were set override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "emit":
			cfg.Emit = *emit
		case "run":
			cfg.Run = *run
		case "o":
			cfg.Output = *output
		case "label-prefix":
			cfg.LabelPrefix = *labelPrefix
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	level, err := logs.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	logger := logs.New(os.Stderr, level)
	slog.SetDefault(logger)

	if flag.NArg() == 0 {
		runREPL(cfg, logger)
		return
	}

	d := &driver{
		cfg:    cfg,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	if err := d.compileFiles(flag.Args()); err != nil {
		os.Exit(1)
	}
}
