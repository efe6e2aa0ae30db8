// SPDX-License-Identifier: MIT

// Command matcalc evaluates one matrix operation on matrices read from a
// YAML, JSON or TOML file (keys "a" and optionally "b") or from an mmapstore
// file, and prints the result.
//
//	matcalc -op inv input.yaml
//	matcalc -op minor -row 0 -col 2 input.yaml
//	matcalc -op mul -save out.lvmx input.yaml
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmatrix/internal/config"
	"github.com/katalvlaran/lvmatrix/matrix"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	matrix.SetLogger(logger.Named("matrix"))

	if err = run(os.Args[1:], os.Stdout, cfg); err != nil {
		logger.Error("matcalc failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
