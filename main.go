package main

import (
	"context"
	"fmt"
	"log"
	"os"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to solve: %v\n", err)
		os.Exit(1)
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "keystats: ", log.LstdFlags|log.Lmicroseconds)
	}

	if err := Solve(context.Background(), cfg, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to solve: %v\n", err)
		os.Exit(1)
	}
}
