package main

import (
	"github.com/spf13/cobra"

	"github.com/docwright/docwright/internal/git"
	"github.com/docwright/docwright/internal/output"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var flags llmFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Review staged changes for documentation gaps",
		Long: `Send the staged diff to an LLM and report whether the change needs a
changeset entry, README updates, or reference documentation.

The review is advisory: the command prints the model's assessment and
exits 0 regardless of its verdict. Requires staged changes.

Examples:
  git add -A && docwright check
  docwright check --model claude-haiku
  docwright check --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags)
		},
	}

	addLLMFlags(cmd, &flags)
	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, flags llmFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if err := validateLLMFlags(flags); err != nil {
		printer.Error(err)
		return err
	}

	vars, err := stagedContext()
	if err != nil {
		printer.Error(err)
		return err
	}

	resp, err := completePrompt("check", vars, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	stat, _ := git.StagedDiffstat()

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"model":         resp.Model,
			"review":        resp.Content,
			"files_changed": stat.Files,
			"insertions":    stat.Insertions,
			"deletions":     stat.Deletions,
		})
	}

	printer.Section("Staged changes")
	printer.KeyValue("Files", formatInt(stat.Files))
	printer.KeyValue("Insertions", formatInt(stat.Insertions))
	printer.KeyValue("Deletions", formatInt(stat.Deletions))
	printer.Section("Review")
	printer.Println(resp.Content)
	return nil
}
