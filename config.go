package main

import (
	"fmt"
	"runtime"
	"strconv"
)

const defaultInput = "data.txt"

// Config is everything the command line and environment can change.
// None of it affects the result, only how it is computed.
type Config struct {
	Path    string
	Workers int
	Verbose bool
}

// LoadConfig reads the optional input path from args (without the
// program name) and the BRC_WORKERS and BRC_VERBOSE variables. Unset or
// unparsable variables leave the defaults in place.
func LoadConfig(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Path:    defaultInput,
		Workers: runtime.GOMAXPROCS(-1),
	}

	switch len(args) {
	case 0:
	case 1:
		cfg.Path = args[0]
	default:
		return cfg, fmt.Errorf("expected at most one input path, got %d arguments", len(args))
	}

	if n, err := strconv.Atoi(getenv("BRC_WORKERS")); err == nil && n > 0 {
		cfg.Workers = n
	}
	if verbose, err := strconv.ParseBool(getenv("BRC_VERBOSE")); err == nil {
		cfg.Verbose = verbose
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
