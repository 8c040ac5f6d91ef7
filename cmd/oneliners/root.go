// Package cmd provides the command-line interface for oneliners.
// It handles argument parsing, configuration, and dispatch to the store,
// get, and list operations, plus the interactive picker run by default.
package cmd

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/toozej/oneliners/internal/snippet"
	"github.com/toozej/oneliners/internal/tui"
	"github.com/toozej/oneliners/pkg/config"
	"github.com/toozej/oneliners/pkg/man"
	"github.com/toozej/oneliners/pkg/version"
)

var conf config.Config

var rootCmd = &cobra.Command{
	Use:              "oneliners",
	Short:            "Store and retrieve single-line shell snippets",
	Long:             `A simple CLI tool to store and retrieve oneliners, with substring search, clipboard copy, and an interactive fuzzy picker`,
	Args:             cobra.NoArgs,
	PersistentPreRun: rootCmdPreRun,
	Run:              rootCmdRun,
}

var storeCmd = &cobra.Command{
	Use:   "store <oneliner>",
	Short: "Store a new oneliner if not already present",
	Args:  cobra.ExactArgs(1),
	Run:   storeCmdRun,
}

var getCmd = &cobra.Command{
	Use:   "get <search>",
	Short: "Search stored oneliners and copy a match to the clipboard",
	Args:  cobra.ExactArgs(1),
	Run:   getCmdRun,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored oneliners in file order",
	Args:  cobra.NoArgs,
	Run:   listCmdRun,
}

// rootCmdRun launches the interactive picker over all stored oneliners.
func rootCmdRun(cmd *cobra.Command, args []string) {
	store := mustOpenStore()

	oneliners, ok := store.All()
	if !ok || len(oneliners) == 0 {
		fmt.Println("No oneliners stored yet.")
		return
	}

	if err := tui.Run(oneliners, newSink()); err != nil {
		log.Fatal(err)
	}
}

func storeCmdRun(cmd *cobra.Command, args []string) {
	store := mustOpenStore()

	err := store.Add(args[0])
	switch {
	case errors.Is(err, snippet.ErrMultiline):
		fmt.Println("Error: That's not a oneliner! Multi-line snippets are not currently supported. You entered:")
		fmt.Println(args[0])
	case errors.Is(err, snippet.ErrDuplicate):
		fmt.Println("Snippet already present.")
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("Snippet stored successfully! [%s]\n", store.Path())
	}
}

func getCmdRun(cmd *cobra.Command, args []string) {
	store := mustOpenStore()

	var matches []string
	var ok bool
	if viper.GetBool("fuzzy") {
		matches, ok = store.SearchFuzzy(args[0])
	} else {
		matches, ok = store.Search(args[0])
	}
	if !ok {
		fmt.Println("No oneliners stored yet.")
		return
	}
	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return
	}

	for i, m := range matches {
		fmt.Printf("%d: %s\n", i+1, m)
	}

	if err := snippet.SelectForCopy(os.Stdin, os.Stdout, matches, newSink()); err != nil {
		log.Fatal("Failed to copy to clipboard: ", err)
	}
}

func listCmdRun(cmd *cobra.Command, args []string) {
	store := mustOpenStore()

	entries, ok := store.List()
	if !ok {
		fmt.Println("No oneliners stored yet.")
		return
	}
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	for i, line := range entries {
		fmt.Printf("%d: %s\n", i+1, line)
	}
}

// mustOpenStore resolves the store path and opens the store against the real
// filesystem. An undeterminable home directory is fatal: there is no
// fallback location.
func mustOpenStore() *snippet.Store {
	path, err := snippet.StorePath()
	if err != nil {
		log.Fatal(err)
	}
	return snippet.NewStore(afero.NewOsFs(), path)
}

// newSink builds the clipboard sink, strict when requested via flag or
// environment. Lenient is the default: copy failures go unreported.
func newSink() snippet.Sink {
	return snippet.NewSink(viper.GetBool("strict-clipboard") || conf.StrictClipboard)
}

func rootCmdPreRun(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return
	}
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	// Clipboard utility presence is a global precondition, checked before
	// any subcommand logic runs
	if err := snippet.CheckClipboard(); err != nil {
		log.Fatal(err)
	}
}

// Execute runs the root command and handles any execution errors.
// This is the main entry point for the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	_, err := maxprocs.Set()
	if err != nil {
		log.Error("Error setting maxprocs: ", err)
	}

	// Get configuration from environment variables
	conf = config.GetEnvVars()

	// Create rootCmd-level flags
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().Bool("strict-clipboard", false, "Report clipboard copy failures instead of ignoring them")
	getCmd.Flags().BoolP("fuzzy", "f", false, "Use fuzzy matching instead of exact substring search")

	// Add sub-commands
	rootCmd.AddCommand(
		storeCmd,
		getCmd,
		listCmd,
		man.NewManCmd(),
		version.Command(),
	)
}
