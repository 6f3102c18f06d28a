package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docwright/docwright/internal/git"
	"github.com/docwright/docwright/internal/output"
)

// sourceExtensions lists the file types the docs command will document.
var sourceExtensions = map[string]bool{
	".go": true, ".ts": true, ".tsx": true, ".js": true, ".jsx": true,
	".py": true, ".rs": true, ".rb": true, ".java": true, ".kt": true,
	".c": true, ".h": true, ".cpp": true, ".cs": true, ".sh": true,
}

// newDocsCmd creates the docs command.
func newDocsCmd() *cobra.Command {
	var (
		flags   llmFlags
		outDir  string
		all     bool
		rebuild bool
	)

	cmd := &cobra.Command{
		Use:   "docs [file...]",
		Short: "Draft reference pages for source files",
		Long: `Generate a markdown reference page per source file and place it under
the docs directory, mirroring the source layout ("internal/llm/llm.go"
becomes "docs/internal/llm/llm.md").

With no arguments the staged files are documented; --all walks every
tracked source file instead. Existing pages are skipped unless --rebuild
is set. Pair with 'docwright sidebar' to pick the new pages up in the
navigation.

Examples:
  git add internal/llm && docwright docs
  docwright docs --all --rebuild
  docwright docs internal/llm/llm.go --model claude-haiku`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(cmd, args, flags, outDir, all, rebuild)
		},
	}

	addLLMFlags(cmd, &flags)
	cmd.Flags().StringVar(&outDir, "out", "docs", "Directory to place generated pages in")
	cmd.Flags().BoolVar(&all, "all", false, "Document every tracked source file, not just staged ones")
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Regenerate pages that already exist")

	return cmd
}

// runDocs executes the docs command.
func runDocs(cmd *cobra.Command, args []string, flags llmFlags, outDir string, all, rebuild bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if err := validateLLMFlags(flags); err != nil {
		printer.Error(err)
		return err
	}

	files, err := docsTargets(args, all)
	if err != nil {
		printer.Error(err)
		return err
	}
	if len(files) == 0 {
		err := output.NewUserError("no source files to document. Stage files, pass paths, or use --all")
		printer.Error(err)
		return err
	}

	var written, skipped []string
	for _, file := range files {
		page := pagePath(outDir, file)

		if !rebuild && fileExists(page) {
			skipped = append(skipped, page)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to read "+file, err)
			printer.Error(sysErr)
			return sysErr
		}

		resp, err := completePrompt("docs", map[string]string{
			"file_path":    file,
			"file_content": string(content),
		}, flags)
		if err != nil {
			printer.Error(err)
			return err
		}

		if err := os.MkdirAll(filepath.Dir(page), 0o755); err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to create docs directory", err)
			printer.Error(sysErr)
			return sysErr
		}
		draft := strings.TrimSpace(resp.Content) + "\n"
		if err := os.WriteFile(page, []byte(draft), 0o644); err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to write "+page, err)
			printer.Error(sysErr)
			return sysErr
		}
		written = append(written, page)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"written": written,
			"skipped": skipped,
		})
	}

	for _, page := range written {
		printer.Println("wrote " + page)
	}
	if len(skipped) > 0 {
		printer.Warn("skipped %d existing pages (use --rebuild to regenerate)", len(skipped))
	}
	return nil
}

// docsTargets resolves which source files to document. Explicit args win;
// otherwise staged files, or every tracked file with --all. Non-source
// files are filtered out except for explicit args.
func docsTargets(args []string, all bool) ([]string, error) {
	if len(args) > 0 {
		for _, arg := range args {
			if !fileExists(arg) {
				return nil, output.NewUserError("no such file: " + arg)
			}
		}
		return args, nil
	}

	if !git.IsRepo() {
		return nil, output.NewUserError("not a git repository. Run docwright inside a repository")
	}

	var files []string
	var err error
	if all {
		files, err = git.LsFiles()
	} else {
		files, err = git.StagedFiles()
	}
	if err != nil {
		return nil, err
	}

	var sources []string
	for _, file := range files {
		if sourceExtensions[path.Ext(file)] && fileExists(file) {
			sources = append(sources, file)
		}
	}
	return sources, nil
}

// pagePath maps a source path to its docs page, swapping the extension
// for .md and mirroring the directory layout under outDir.
func pagePath(outDir, file string) string {
	rel := strings.TrimSuffix(file, path.Ext(file)) + ".md"
	return filepath.Join(outDir, filepath.FromSlash(rel))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
