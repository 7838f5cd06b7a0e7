package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/namsral/flag"
	"github.com/pkg/errors"

	"rust-playground-client/playground"
)

// EnvPrefix is prepended to every flag name when it is looked up in the
// environment, e.g. -crate-type is read from PLAYGROUND_CRATE_TYPE.
const EnvPrefix = "PLAYGROUND"

const (
	CommandExecute = "execute"
	CommandCompile = "compile"
	CommandFormat  = "format"
	CommandLint    = "lint"
)

var (
	// ErrUnknownCommand is returned when the first argument is not a command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidFlag is returned when the flag set rejected the arguments. The
	// flag set has already written the reason and the usage to output.
	ErrInvalidFlag = errors.New("invalid flag")
)

var commandAliases = map[string]string{
	"execute": CommandExecute,
	"exec":    CommandExecute,
	"compile": CommandCompile,
	"format":  CommandFormat,
	"fmt":     CommandFormat,
	"lint":    CommandLint,
	"clippy":  CommandLint,
}

type Arguments struct {
	Command string
	Source  string
	URL     string
	Verbose bool

	Channel   playground.Channel
	Mode      playground.Mode
	CrateType playground.CrateType
	Tests     bool
	Backtrace bool

	Target                  playground.Target
	Edition                 string
	AsmFlavor               string
	DemangleAssembly        playground.DemangleAssembly
	HideAssemblerDirectives playground.HideAssemblerDirectives
}

// ParseCommandArguments parses `<command> [flags]`. Usage and flag errors are
// written to output.
func ParseCommandArguments(args []string, output io.Writer) (Arguments, error) {
	if len(args) == 0 {
		return Arguments{}, errors.Wrap(ErrUnknownCommand, "no command given")
	}

	command, ok := commandAliases[args[0]]

	if !ok {
		return Arguments{}, errors.Wrapf(ErrUnknownCommand, "%q", args[0])
	}

	parsed := Arguments{Command: command}

	fs := flag.NewFlagSetWithEnvPrefix(command, EnvPrefix, flag.ContinueOnError)
	fs.SetOutput(output)

	source := &sourceValue{code: &parsed.Source}

	fs.Var(source, "src", "rust source code, or - to read a line from stdin")
	fs.StringVar(&parsed.URL, "url", playground.DefaultBaseURL, "playground base address")
	fs.BoolVar(&parsed.Verbose, "verbose", false, "log every playground request")

	switch command {
	case CommandExecute:
		registerBuildFlags(fs, &parsed)

	case CommandCompile:
		registerBuildFlags(fs, &parsed)

		fs.Var(&parsed.Target, "target", usage("compiler output", playground.TargetValues()))
		fs.StringVar(&parsed.Edition, "edition", "", "rust edition, empty for the playground default")
		fs.StringVar(&parsed.AsmFlavor, "asm-flavor", "", usage("assembly flavor", playground.AsmFlavorValues()))
		fs.Var(&parsed.DemangleAssembly, "demangle",
			usage("assembly symbol handling", playground.DemangleAssemblyValues()))
		fs.Var(&parsed.HideAssemblerDirectives, "directives",
			usage("assembler directives", playground.HideAssemblerDirectivesValues()))
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Arguments{}, err
		}

		return Arguments{}, errors.Wrap(ErrInvalidFlag, err.Error())
	}

	if !source.set {
		return Arguments{}, errors.New("missing required flag -src")
	}

	if parsed.AsmFlavor != "" {
		if _, err := playground.ParseAsmFlavor(parsed.AsmFlavor); err != nil {
			return Arguments{}, err
		}
	}

	return parsed, nil
}

// sourceValue tells an explicitly empty -src apart from a missing one.
type sourceValue struct {
	code *string
	set  bool
}

func (s *sourceValue) String() string {
	if s == nil || s.code == nil {
		return ""
	}

	return *s.code
}

func (s *sourceValue) Set(value string) error {
	*s.code = value
	s.set = true

	return nil
}

func registerBuildFlags(fs *flag.FlagSet, parsed *Arguments) {
	fs.Var(&parsed.Channel, "channel", usage("release channel", playground.ChannelValues()))
	fs.Var(&parsed.Mode, "mode", usage("compilation mode", playground.ModeValues()))
	fs.Var(&parsed.CrateType, "crate-type", usage("crate type", playground.CrateTypeValues()))
	fs.BoolVar(&parsed.Tests, "tests", false, "run the code as tests")
	fs.BoolVar(&parsed.Backtrace, "backtrace", false, "enable RUST_BACKTRACE")
}

func usage(what string, values []string) string {
	return fmt.Sprintf("%s, one of %s", what, strings.Join(values, ", "))
}

// ResolveSource returns src, or a single line read from stdin when src is "-".
func ResolveSource(src string, stdin io.Reader) (string, error) {
	if src != "-" {
		return src, nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')

	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read source from stdin")
	}

	return line, nil
}

// CompileRequest assembles the compile request described by the arguments.
func (a Arguments) CompileRequest(code string) (playground.CompileRequest, error) {
	builder := playground.NewCompileBuilder(code).
		Target(a.Target).
		DemangleAssembly(a.DemangleAssembly).
		HideAssemblerDirectives(a.HideAssemblerDirectives).
		Channel(a.Channel).
		Mode(a.Mode).
		Edition(a.Edition).
		CrateType(a.CrateType).
		Tests(a.Tests).
		Backtrace(a.Backtrace)

	if a.AsmFlavor != "" {
		flavor, err := playground.ParseAsmFlavor(a.AsmFlavor)

		if err != nil {
			return playground.CompileRequest{}, err
		}

		builder = builder.AssemblyFlavor(flavor)
	}

	return builder.Build()
}

// ExecuteRequest assembles the execute request described by the arguments.
func (a Arguments) ExecuteRequest(code string) (playground.ExecuteRequest, error) {
	return playground.NewExecuteBuilder(code).
		Channel(a.Channel).
		Mode(a.Mode).
		CrateType(a.CrateType).
		Tests(a.Tests).
		Backtrace(a.Backtrace).
		Build()
}
