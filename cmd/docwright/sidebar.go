package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docwright/docwright/internal/output"
	"github.com/docwright/docwright/internal/sidebar"
)

// newSidebarCmd creates the sidebar command.
func newSidebarCmd() *cobra.Command {
	var (
		docsRoot   string
		outputPath string
		ignore     []string
		noSort     bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Regenerate the VitePress navigation sidebar",
		Long: `Scan the docs directory for markdown pages and write the generated
sidebar module consumed by the VitePress config.

Pages in subdirectories are grouped by their top-level directory; pages
at the root of the docs directory land in a "General" group that always
sorts first. Numeric filename prefixes ("01. intro.md") control ordering
within a group and are stripped from display titles but kept in links.

The output file is overwritten on every run and carries a do-not-edit
marker. Running the command twice without changing the docs tree
produces a byte-identical file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := sidebar.DefaultConfig()
			if cmd.Flags().Changed("docs") {
				cfg.DocsRoot = docsRoot
			}
			if cmd.Flags().Changed("out") {
				cfg.OutputPath = outputPath
			} else if cmd.Flags().Changed("docs") {
				cfg.OutputPath = filepath.Join(docsRoot, ".vitepress", "sidebar-auto.ts")
			}
			if cmd.Flags().Changed("ignore") {
				cfg.IgnorePatterns = ignore
			}
			cfg.SortByPrefix = !noSort
			return runSidebar(cmd, cfg, dryRun)
		},
	}

	cmd.Flags().StringVar(&docsRoot, "docs", "docs", "Root directory to scan for markdown pages")
	cmd.Flags().StringVar(&outputPath, "out", "", "Path of the generated sidebar module (default docs/.vitepress/sidebar-auto.ts)")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Glob patterns for files to skip (replaces the defaults)")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "Keep scan order instead of numeric-prefix ordering")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the sidebar structure without writing the output file")

	return cmd
}

func runSidebar(cmd *cobra.Command, cfg sidebar.Config, dryRun bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	if dryRun {
		groups, warnings, err := sidebar.Build(cfg)
		if err != nil {
			wrapped := sidebarError(err)
			printer.Error(wrapped)
			return wrapped
		}
		for _, w := range warnings {
			printer.Warn("%s", w)
		}
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{
				"groups":   groups,
				"warnings": warnings,
			})
		}
		printGroups(printer, groups)
		return nil
	}

	result, err := sidebar.Generate(cfg)
	if err != nil {
		wrapped := sidebarError(err)
		printer.Error(wrapped)
		return wrapped
	}

	for _, w := range result.Warnings {
		printer.Warn("%s", w)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	if err := printer.Success(map[string]any{"message": fmt.Sprintf("Wrote %s", result.OutputPath)}); err != nil {
		return err
	}
	printer.KeyValue("Groups", fmt.Sprintf("%d", result.Groups))
	printer.KeyValue("Pages", fmt.Sprintf("%d", result.Items))
	return nil
}

// printGroups renders the sidebar structure as an indented tree.
func printGroups(printer *output.Printer, groups []sidebar.Group) {
	if len(groups) == 0 {
		printer.Println("No groups")
		return
	}
	for _, group := range groups {
		printer.Section(group.Text)
		for _, item := range group.Items {
			printer.Println(fmt.Sprintf("  %s  %s", item.Text, item.Link))
		}
	}
}

// sidebarError maps sidebar error kinds onto CLI exit codes. Configuration
// problems are the user's to fix; filesystem failures are environmental.
func sidebarError(err error) error {
	var serr *sidebar.Error
	if errors.As(err, &serr) && serr.Kind == sidebar.KindConfig {
		return output.NewUserError(err.Error())
	}
	return output.NewSystemErrorWithCause("sidebar generation failed", err)
}
