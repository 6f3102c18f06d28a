// Package output provides structured output and error handling for the
// docwright CLI.
//
// Every command supports both human-readable and JSON output. The Printer
// switches formats based on the --json flag and disables lipgloss styling
// when the destination is not a TTY:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "sidebar written", "groups": 3})
//	printer.Error(err)
//
// In JSON mode errors render as {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: user error (bad args, invalid configuration)
//	output.ExitSystemError // 2: system error (git failed, I/O error, API failure)
//
// Errors created with NewUserError/NewSystemError carry their exit code to
// the process boundary; GetExitCode extracts it after fang returns.
package output
