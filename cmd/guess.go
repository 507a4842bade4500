package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/the-horizon-dev/fast-language-guesser/guesser"
)

func NewGuessCommand() *cobra.Command {
	var (
		only      []string
		exclude   []string
		limit     int
		minLength int
		mixed     bool
		asJSON    bool
	)

	guessCommand := &cobra.Command{
		Use:   "guess [text]",
		Short: "Guess the language of a text from arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimSpace(string(data))
			}
			if text == "" {
				return fmt.Errorf("no text given: pass it as arguments or on stdin")
			}

			opts := guesser.Options{
				MinLength: minLength,
				Limit:     limit,
				Only:      only,
				Exclude:   exclude,
			}
			var results []guesser.Result
			if mixed {
				results = guesser.GuessMixed(text, opts, guesser.SegmentOptions{})
			} else {
				results = guesser.Guess(text, opts)
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(results)
			}
			for _, result := range results {
				name := result.Language
				if name == "" {
					name = result.Alpha3
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.4f\n", result.Alpha3, name, result.Score)
			}
			return nil
		},
	}

	guessCommand.Flags().StringSliceVar(&only, "only", nil, "restrict guesses to these language codes")
	guessCommand.Flags().StringSliceVar(&exclude, "exclude", nil, "never guess these language codes")
	guessCommand.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of guesses to print")
	guessCommand.Flags().IntVar(&minLength, "min-length", 0, "minimum input length in runes before guessing")
	guessCommand.Flags().BoolVar(&mixed, "mixed", false, "detect per sentence and merge, for multi-language text")
	guessCommand.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return guessCommand
}
