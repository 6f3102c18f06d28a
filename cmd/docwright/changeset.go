package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docwright/docwright/internal/changeset"
	"github.com/docwright/docwright/internal/git"
	"github.com/docwright/docwright/internal/output"
)

// newChangesetCmd creates the changeset command.
func newChangesetCmd() *cobra.Command {
	var (
		flags   llmFlags
		pkg     string
		dir     string
		dryRun  bool
		bumpArg string
	)

	cmd := &cobra.Command{
		Use:   "changeset",
		Short: "Draft a changeset entry from the staged diff",
		Long: `Ask an LLM to classify the staged diff (patch, minor or major) and write
a one-line summary, then save both as a markdown entry under .changeset/.

The bump can be pinned with --bump, in which case the model only writes
the summary. Filenames are derived from the summary and never overwrite
an existing entry. Requires staged changes.

Examples:
  git add -A && docwright changeset
  docwright changeset --bump minor
  docwright changeset --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChangeset(cmd, flags, pkg, dir, bumpArg, dryRun)
		},
	}

	addLLMFlags(cmd, &flags)
	cmd.Flags().StringVar(&pkg, "package", "", "Package name for the entry (default: repository name)")
	cmd.Flags().StringVar(&dir, "dir", "", "Changeset directory (default: .changeset at the repo root)")
	cmd.Flags().StringVar(&bumpArg, "bump", "", "Pin the bump level (patch, minor, major) instead of asking the model")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the entry without writing it")

	return cmd
}

// runChangeset executes the changeset command.
func runChangeset(cmd *cobra.Command, flags llmFlags, pkg, dir, bumpArg string, dryRun bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if err := validateLLMFlags(flags); err != nil {
		printer.Error(err)
		return err
	}
	if bumpArg != "" && bumpArg != changeset.BumpPatch && bumpArg != changeset.BumpMinor && bumpArg != changeset.BumpMajor {
		err := output.NewUserError("invalid bump level: " + bumpArg + " (want patch, minor or major)")
		printer.Error(err)
		return err
	}

	vars, err := stagedContext()
	if err != nil {
		printer.Error(err)
		return err
	}

	resp, err := completePrompt("changeset", vars, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	bump, summary, err := changeset.ParseResponse(resp.Content)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("could not parse model response", err)
		printer.Error(sysErr)
		return sysErr
	}
	if bumpArg != "" {
		bump = bumpArg
	}

	if pkg == "" {
		pkg, err = git.RepoName()
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	entry := &changeset.Entry{
		Package: pkg,
		Bump:    bump,
		Summary: summary,
	}
	if err := entry.Validate(); err != nil {
		sysErr := output.NewSystemErrorWithCause("model produced an invalid entry", err)
		printer.Error(sysErr)
		return sysErr
	}

	if dryRun {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"package": entry.Package,
				"bump":    entry.Bump,
				"summary": entry.Summary,
			})
		}
		printer.Print("%s", changeset.Format(entry))
		return nil
	}

	if dir == "" {
		root, err := git.RepoRoot()
		if err != nil {
			printer.Error(err)
			return err
		}
		dir = filepath.Join(root, changeset.DefaultDir)
	}

	path, err := changeset.Write(entry, dir)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to write changeset", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": "Wrote " + path,
		"path":    path,
		"bump":    entry.Bump,
		"summary": entry.Summary,
	})
}
