package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docwright/docwright/internal/git"
	"github.com/docwright/docwright/internal/output"
)

// newReadmeCmd creates the readme command.
func newReadmeCmd() *cobra.Command {
	var (
		flags  llmFlags
		path   string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Draft or refresh README.md",
		Long: `Generate a README draft from the repository's tracked file tree.

If a README already exists its content is handed to the model so accurate
sections survive the rewrite. The draft replaces the file in place; use
--stdout to review it first.

Examples:
  docwright readme --stdout
  docwright readme --model claude-sonnet
  docwright readme --path docs/README.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReadme(cmd, flags, path, stdout)
		},
	}

	addLLMFlags(cmd, &flags)
	cmd.Flags().StringVar(&path, "path", "README.md", "Output path relative to the repo root")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the draft instead of writing the file")

	return cmd
}

// runReadme executes the readme command.
func runReadme(cmd *cobra.Command, flags llmFlags, relPath string, stdout bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if err := validateLLMFlags(flags); err != nil {
		printer.Error(err)
		return err
	}

	if !git.IsRepo() {
		err := output.NewUserError("not a git repository. Run docwright inside a repository")
		printer.Error(err)
		return err
	}

	root, err := git.RepoRoot()
	if err != nil {
		printer.Error(err)
		return err
	}

	files, err := git.LsFiles()
	if err != nil {
		printer.Error(err)
		return err
	}
	if len(files) == 0 {
		err := output.NewUserError("no tracked files. Commit something first")
		printer.Error(err)
		return err
	}

	name, err := git.RepoName()
	if err != nil {
		printer.Error(err)
		return err
	}

	target := filepath.Join(root, filepath.FromSlash(relPath))

	vars := map[string]string{
		"repo_name":               name,
		"file_tree":               strings.Join(files, "\n"),
		"existing_readme_section": existingReadmeSection(target),
	}

	resp, err := completePrompt("readme", vars, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	draft := strings.TrimSpace(resp.Content) + "\n"

	if stdout {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"model":   resp.Model,
				"content": draft,
			})
		}
		printer.Print("%s", draft)
		return nil
	}

	if err := os.WriteFile(target, []byte(draft), 0o644); err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to write README", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": "Wrote " + target,
		"path":    target,
		"model":   resp.Model,
	})
}

// existingReadmeSection wraps current README content as prompt context.
// Returns an empty string when no README exists yet.
func existingReadmeSection(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return "An existing README follows. Keep sections that are still accurate:\n\n" + string(content)
}
