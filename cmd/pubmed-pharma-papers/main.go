// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-pharma-papers CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/internal/logging"
	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/internal/pipeline"
	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout    = 60 * time.Second
	defaultMaxResults = 100
)

// rootCmd runs the whole pipeline; the tool is single-purpose, so there are
// no stage subcommands.
var rootCmd = &cobra.Command{
	Use:   "pubmed-pharma-papers [query...]",
	Short: "Find PubMed papers with pharma/biotech company authors",
	Long: `pubmed-pharma-papers queries PubMed for articles matching a search term,
filters for articles with at least one author affiliated with a
pharma/biotech company, and prints a table or writes a CSV file.

Positional arguments are joined into a single PubMed query (use quotes for
PubMed field syntax).`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-pharma-papers.yaml or ~/.config/pubmed-pharma-papers/config.yaml)")

	rootCmd.Flags().IntP("num", "n", defaultMaxResults, "number of results to fetch")
	rootCmd.Flags().StringP("file", "f", "", "filename to save CSV output; if not given, prints to console")
	rootCmd.Flags().BoolP("debug", "d", false, "print debug information during execution")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-pharma-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-pharma-papers"))
		}
	}

	viper.SetEnvPrefix("PUBMED_PHARMA")
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", defaultTimeout)
	viper.SetDefault("search.user_agent", "pubmed-pharma-papers/"+version)
	viper.SetDefault("search.database", "pubmed")
	viper.SetDefault("fetch.timeout", defaultTimeout)
	viper.SetDefault("fetch.user_agent", "pubmed-pharma-papers/"+version)
	viper.SetDefault("fetch.database", "pubmed")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return fmt.Errorf("no search query provided")
	}
	query := strings.Join(args, " ")

	num, _ := cmd.Flags().GetInt("num")
	outFile, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")

	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg.Search.MaxResults = num

	log := logging.Setup(os.Stderr, debug)
	log.Debug().Str("query", query).Int("num", num).Str("file", outFile).Msg("starting run")

	client := &http.Client{Timeout: cfg.Search.Timeout}

	return pipeline.Run(cmd.Context(), client, query, outFile, cfg, os.Stdout, log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
