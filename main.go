package main

import (
	"os"

	"fjacquet/insurance-summary/cmd/categorize"
	configcmd "fjacquet/insurance-summary/cmd/config"
	"fjacquet/insurance-summary/cmd/preview"
	"fjacquet/insurance-summary/cmd/root"
	"fjacquet/insurance-summary/cmd/summary"
	"fjacquet/insurance-summary/internal/config"
)

func init() {
	// Load .env before viper reads the environment. A broken .env is not
	// fatal: explicit variables and defaults still apply.
	_, _ = config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	os.Exit(root.Execute(os.Stderr))
}
