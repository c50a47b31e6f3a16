// Package cli wires the graphpoet commands with cobra.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/graphpoet/core"
	"github.com/katalvlaran/graphpoet/corpus"
	"github.com/katalvlaran/graphpoet/internal/config"
	"github.com/katalvlaran/graphpoet/internal/logging"
	"github.com/spf13/cobra"
)

// DefaultEnvFile is the .env file read before the environment is applied.
const DefaultEnvFile = ".env"

// state carries the merged configuration from the root command into subcommands.
type state struct {
	configPath string
	envFile    string
	flags      config.Config

	cfg    config.Config
	logger *log.Logger
}

// NewRootCommand returns a fresh command tree. Each call is independent, so
// tests can execute commands in parallel.
func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "graphpoet",
		Short: "graphpoet - bridge-word poetry from a corpus graph",
		Long: `graphpoet builds a weighted word-adjacency graph from a corpus and
inserts the strongest "bridge" word between consecutive input words.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&st.configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&st.envFile, "env-file", DefaultEnvFile, "Path to a .env file (ignored if missing)")
	pf.StringVarP(&st.flags.Corpus, "corpus", "f", "", "Path to the corpus text file")
	pf.StringVarP(&st.flags.Graph, "graph", "g", string(core.KindVertices), "Graph implementation (edges, vertices)")
	pf.IntVar(&st.flags.CacheSize, "cache-size", 0, "Bridge memo cache entries (0 disables)")
	pf.StringVar(&st.flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newPoemCommand(st), newDumpCommand(st))

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// resolve merges defaults, config file, environment and explicitly set flags,
// validates the result and builds the logger.
func (st *state) resolve(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(st.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		cfg.Corpus = st.flags.Corpus
	}
	if flags.Changed("graph") {
		cfg.Graph = st.flags.Graph
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = st.flags.CacheSize
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = st.flags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	st.cfg, st.logger = cfg, logger

	return nil
}

// loadCorpus reads and builds the configured corpus.
func (st *state) loadCorpus() (*corpus.Corpus, error) {
	c, err := corpus.LoadFile(st.cfg.Corpus,
		corpus.WithKind(core.Kind(st.cfg.Graph)),
		corpus.WithLogger(st.logger))
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	st.logger.Info("corpus loaded",
		"path", st.cfg.Corpus,
		"graph", st.cfg.Graph,
		"tokens", c.Tokens,
		"words", c.Cases.Len())

	return c, nil
}

// writeLine writes s and a newline, returning the write error.
func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)

	return err
}
