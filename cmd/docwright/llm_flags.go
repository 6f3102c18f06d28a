package main

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docwright/docwright/internal/git"
	"github.com/docwright/docwright/internal/llm"
	"github.com/docwright/docwright/internal/output"
	"github.com/docwright/docwright/internal/prompt"
)

// llmFlags holds the flag values shared by every LLM-backed command.
type llmFlags struct {
	model       string
	provider    string
	temperature float64
	maxTokens   int
	timeout     int
}

// addLLMFlags registers the shared LLM flags on a command.
func addLLMFlags(cmd *cobra.Command, flags *llmFlags) {
	cmd.Flags().StringVarP(&flags.model, "model", "m", "local", "Model name (default: local)")
	cmd.Flags().StringVarP(&flags.provider, "provider", "p", "", "Provider (anthropic, openai, google, local) - inferred if omitted")
	cmd.Flags().Float64Var(&flags.temperature, "temperature", 0, "Temperature (0.0-1.0, 0 uses model default)")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Max tokens to generate (0 uses model default)")
	cmd.Flags().IntVar(&flags.timeout, "timeout", 120, "Request timeout in seconds")
}

// validateLLMFlags validates the shared LLM flags.
func validateLLMFlags(flags llmFlags) error {
	if flags.temperature < 0 || flags.temperature > 2 {
		return output.NewUserError("temperature must be between 0 and 2, got " + formatFloat(flags.temperature))
	}
	if flags.timeout <= 0 {
		return output.NewUserError("timeout must be positive, got " + formatInt(flags.timeout))
	}
	if flags.maxTokens < 0 {
		return output.NewUserError("max-tokens must be non-negative, got " + formatInt(flags.maxTokens))
	}
	return nil
}

// formatFloat formats a float64 for error messages.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int for error messages.
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// completePrompt renders a named template with vars and runs it through the
// configured model. Returned errors are already classified for exit codes.
func completePrompt(name string, vars map[string]string, flags llmFlags) (*llm.Response, error) {
	tmpl, err := prompt.Load(name)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to load prompt template", err)
	}

	client, err := llm.New(flags.model, llm.Provider(flags.provider))
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	req := llm.Request{
		System:      tmpl.System,
		Prompt:      prompt.Render(tmpl, vars),
		Temperature: flags.temperature,
		MaxTokens:   flags.maxTokens,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(flags.timeout)*time.Second)
	defer cancel()

	resp, err := client.Complete(ctx, req)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("generation failed", err)
	}
	return resp, nil
}

// stagedContext gathers repo identity plus the staged diff for prompt vars.
// Returns a user error if not in a repo or nothing is staged.
func stagedContext() (map[string]string, error) {
	if !git.IsRepo() {
		return nil, output.NewUserError("not a git repository. Run docwright inside a repository")
	}

	diff, err := git.StagedDiff()
	if err != nil {
		return nil, err
	}
	if diff == "" {
		return nil, output.NewUserError("no staged changes. Stage files with 'git add' first")
	}

	files, err := git.StagedFiles()
	if err != nil {
		return nil, err
	}

	vars := map[string]string{
		"diff":         diff,
		"staged_files": strings.Join(files, "\n"),
		"repo_name":    "",
		"branch":       "",
	}
	if name, err := git.RepoName(); err == nil {
		vars["repo_name"] = name
	}
	if branch, err := git.CurrentBranch(); err == nil {
		vars["branch"] = branch
	}
	return vars, nil
}
