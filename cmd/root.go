// Copyright © 2025 The gnaw authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gnaw",
	Short: "gnaw — parser combinators with annotated error reporting",
	Long: `gnaw is a parser-combinator library for Go with layered error
reporting. The CLI wraps a small s-expression reader built on the
library, useful for checking files and exploring how parse failures
are described.

Getting started:
  gnaw parse file.sexp         Check a file, reporting annotated errors
  gnaw parse -e "(+ 1 2)"      Check an expression from the command line
  gnaw parse -p file.sexp      Print the parsed forms back out
  gnaw repl                    Start an interactive reader
  gnaw fmt file.sexp           Reprint forms in canonical layout
  gnaw kinds                   List the parser error taxonomy
  gnaw kinds EOF               Describe a single error kind

Reader overview:
  Input is a sequence of forms: symbols, integers, floats, strings,
  quoted forms, and parenthesized lists. Comments run from ; to the
  end of the line. Errors inside a started form are reported with the
  chain of grammar rules that were active when the parse failed.

More information:
  Source code:     https://github.com/luthersystems/gnaw`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Here you will define your flags and configuration settings.
	// Cobra supports persistent flags, which, if defined here,
	// will be global for your application.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gnaw.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gnaw" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gnaw")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
