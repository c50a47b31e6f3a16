package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphpoet/poet"
	"github.com/spf13/cobra"
)

func newPoemCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "poem [words...]",
		Short: "Insert bridge words into the input",
		Long: `Insert bridge words between consecutive input words.

With arguments, the arguments form one input line. Without arguments, every
line of standard input is treated as one input.

Examples:
  graphpoet poem --corpus mugar.txt "Test the system."
  cat lines.txt | graphpoet poem -f corpus.txt --graph edges`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.loadCorpus()
			if err != nil {
				return err
			}

			var opts []poet.Option
			opts = append(opts, poet.WithLogger(st.logger))
			if st.cfg.CacheSize > 0 {
				opts = append(opts, poet.WithCache(st.cfg.CacheSize))
			}
			p, err := poet.FromCorpus(c, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				return writeLine(out, p.Poem(strings.Join(args, " ")))
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if err := writeLine(out, p.Poem(sc.Text())); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			return nil
		},
	}
}
