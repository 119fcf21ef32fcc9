package main

import (
	"os"

	"github.com/brettbedarf/pycommander/config"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	nodesDef   string
	verbose    int
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "pycommander",
		Short: "A fake terminal over an in-memory file system",
		Long: `pycommander serves a browser terminal whose commands (ls, cd, cat, mkdir,
rm, ...) operate on a small in-memory file tree. Free text prefixed with
"ai" is translated into a command by an OpenAI compatible model.

Example:
  OPENAI_API_KEY=... pycommander serve --addr :9002 -v 4`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	pf.StringVarP(&flags.nodesDef, "nodes", "n", "", "Path to a nodes def file replacing the default tree")
	pf.IntVarP(&flags.verbose, "verbose", "v", config.InfoVerbose,
		"Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")

	rootCmd.AddCommand(newServeCmd(&flags), newReplCmd(&flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
