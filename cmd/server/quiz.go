package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/quiz"
	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	var (
		mode     string
		title    string
		seed     uint64
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "quiz [FILE|-]",
		Short: "Generate study questions from a text file or stdin",
		Long: `Generates questions offline without a database. Plain mode prints a
numbered prompt list; mcq mode prints JSON. --seed makes mcq output
reproducible. Markdown input (--markdown, or a .md file) is flattened to
prose first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qm, err := domain.ParseQuestionMode(mode)
			if err != nil {
				return fmt.Errorf("%w %q: must be plain or mcq", err, mode)
			}

			content, err := readQuizInput(cmd, args)
			if err != nil {
				return err
			}

			if markdown || isMarkdownPath(args) {
				content = quiz.MarkdownToText([]byte(content))
			}

			note := &domain.Note{Title: title, Content: content}

			var opts []quiz.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, quiz.WithSeed(seed))
			}
			gen := quiz.NewGenerator(opts...)

			out := cmd.OutOrStdout()
			if qm == domain.QuestionModePlain {
				_, err := fmt.Fprint(out, gen.GeneratePlain(note))
				return err
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(gen.GenerateMCQ(note))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.QuestionModePlain), "question mode: plain or mcq")
	cmd.Flags().StringVar(&title, "title", "", "note title used in the output")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible mcq option order")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "treat input as Markdown")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func isMarkdownPath(args []string) bool {
	if len(args) != 1 {
		return false
	}
	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// readQuizInput reads the named file, or stdin for "-" or no argument.
func readQuizInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
