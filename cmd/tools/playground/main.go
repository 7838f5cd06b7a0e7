package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"rust-playground-client/internal/config"
	"rust-playground-client/internal/parser"
	"rust-playground-client/playground"
)

const usageText = `usage: playground <command> [flags]

commands:
  execute, exec    build and run the code
  compile          compile the code to asm, llvm-ir, mir or wasm
  format, fmt      format the code with rustfmt
  lint, clippy     lint the code with clippy

run 'playground <command> -h' for the flags of a command.
`

// output is what a playground command prints: the transformed code and the
// standard output go to stdout, the standard error to stderr.
type output struct {
	code   string
	stdout string
	stderr string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	arguments, err := parser.ParseCommandArguments(args, stderr)

	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0

	case errors.Is(err, parser.ErrInvalidFlag):
		return 2

	case errors.Is(err, parser.ErrUnknownCommand):
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usageText)
		return 2

	case err != nil:
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := config.NewLogger(stderr, arguments.Verbose)
	log.Logger = logger

	code, err := parser.ResolveSource(arguments.Source, stdin)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	client := playground.New(
		playground.WithBaseURL(arguments.URL),
		playground.WithLogger(logger),
	)

	result, err := execute(ctx, client, arguments, code)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	printLines(stdout, result.code)
	printLines(stdout, result.stdout)
	printLines(stderr, result.stderr)

	return 0
}

func execute(ctx context.Context, client *playground.Client, arguments parser.Arguments, code string) (output, error) {
	switch arguments.Command {
	case parser.CommandExecute:
		req, err := arguments.ExecuteRequest(code)

		if err != nil {
			return output{}, err
		}

		resp, err := client.Execute(ctx, req)
		return output{stdout: resp.Stdout, stderr: resp.Stderr}, err

	case parser.CommandCompile:
		req, err := arguments.CompileRequest(code)

		if err != nil {
			return output{}, err
		}

		resp, err := client.Compile(ctx, req)
		return output{code: resp.Code, stdout: resp.Stdout, stderr: resp.Stderr}, err

	case parser.CommandFormat:
		resp, err := client.Format(ctx, playground.NewFormatRequest(code))
		return output{code: resp.Code, stdout: resp.Stdout, stderr: resp.Stderr}, err

	case parser.CommandLint:
		resp, err := client.Lint(ctx, playground.NewLintRequest(code))
		return output{stdout: resp.Stdout, stderr: resp.Stderr}, err
	}

	return output{}, errors.Wrapf(parser.ErrUnknownCommand, "%q", arguments.Command)
}

// printLines writes text line by line, dropping a trailing newline and any
// carriage returns so output looks the same on every platform.
func printLines(w io.Writer, text string) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(text)+bufio.MaxScanTokenSize)

	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
}
