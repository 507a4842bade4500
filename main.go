package main

import (
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/the-horizon-dev/fast-language-guesser/cmd"
	"github.com/the-horizon-dev/fast-language-guesser/utils"
)

var logger = logrus.New()

//go:embed version.txt
var version string

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fast-language-guesser",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "fast-language-guesser",
		Short: "fast-language-guesser guesses the natural language of short texts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				utils.SetVerbose()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	commands := []*cobra.Command{
		cmd.NewGuessCommand(),
		cmd.NewServerCommand(),
		cmd.NewMcpCommand(),
		versionCommand,
	}
	for _, command := range commands {
		rootCmd.AddCommand(command)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Failed to execute command")
	}
}
