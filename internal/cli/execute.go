package cli

import (
	"errors"
	"io"
	"slices"

	"github.com/roach88/rallyref/internal/match"
	"github.com/roach88/rallyref/internal/preset"
	"github.com/roach88/rallyref/internal/rules"
)

// Execute runs the CLI with args and returns the process exit code. Errors
// are reported through OutputFormatter: on stdout as a JSON envelope with
// --format json, on stderr as text otherwise.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	format, _ := cmd.PersistentFlags().GetString("format")
	out := &OutputFormatter{Format: "text", Writer: stderr}
	if format == "json" {
		out = &OutputFormatter{Format: "json", Writer: stdout}
	}
	verbose, _ := cmd.PersistentFlags().GetBool("verbose")
	out.Verbose = verbose

	_ = out.Error(errorCode(err), err.Error(), nil)
	return GetExitCode(err)
}

// errorCode classifies err for CLIError.Code.
func errorCode(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code == ExitFailure {
		return CodeFailure
	}

	var (
		validation *match.ValidationError
		format     *preset.FormatError
		profile    *rules.ProfileError
	)
	if errors.As(err, &validation) || errors.As(err, &format) || errors.As(err, &profile) {
		return CodeValidation
	}
	return CodeCommand
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
