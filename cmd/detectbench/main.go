package main

import (
	"os"

	"detectbench/internal/config"
	"detectbench/internal/engine"
	"detectbench/internal/report"
	"detectbench/pkg/styles"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		styles.EprintFS("error", "[DETECTBENCH] %v", err)
		os.Exit(1)
	}

	if _, err := engine.Run(cfg, os.Stdout, report.NewSink(cfg.ReportPath)); err != nil {
		styles.EprintFS("error", "[DETECTBENCH] %v", err)
		os.Exit(1)
	}
}
