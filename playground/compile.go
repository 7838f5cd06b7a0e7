package playground

// CompileRequest holds the parameters for compiling rust code. Values are
// produced by a CompileBuilder or NewCompileRequest and never change after
// that.
type CompileRequest struct {
	target                  Target
	assemblyFlavor          AsmFlavor
	hasAssemblyFlavor       bool
	demangleAssembly        DemangleAssembly
	hideAssemblerDirectives HideAssemblerDirectives
	channel                 Channel
	mode                    Mode
	edition                 string
	crateType               CrateType
	tests                   bool
	backtrace               bool
	code                    string
}

// compilePayload is the wire shape of a CompileRequest. The assembly flavor is
// left out of the payload entirely when it was never set.
type compilePayload struct {
	Target                  Target                  `json:"target"`
	AssemblyFlavor          *AsmFlavor              `json:"assemblyFlavor,omitempty"`
	DemangleAssembly        DemangleAssembly        `json:"demangleAssembly"`
	HideAssemblerDirectives HideAssemblerDirectives `json:"hideAssemblerDirectives"`
	Channel                 Channel                 `json:"channel"`
	Mode                    Mode                    `json:"mode"`
	Edition                 string                  `json:"edition"`
	CrateType               CrateType               `json:"crateType"`
	Tests                   bool                    `json:"tests"`
	Backtrace               bool                    `json:"backtrace"`
	Code                    string                  `json:"code"`
}

// NewCompileRequest returns a request with the default compile options.
func NewCompileRequest(code string) CompileRequest {
	return CompileRequest{code: code}
}

func (r CompileRequest) Target() Target { return r.target }
func (r CompileRequest) DemangleAssembly() DemangleAssembly { return r.demangleAssembly }
func (r CompileRequest) HideAssemblerDirectives() HideAssemblerDirectives { return r.hideAssemblerDirectives }
func (r CompileRequest) Channel() Channel { return r.channel }
func (r CompileRequest) Mode() Mode { return r.mode }
func (r CompileRequest) Edition() string { return r.edition }
func (r CompileRequest) CrateType() CrateType { return r.crateType }
func (r CompileRequest) Tests() bool { return r.tests }
func (r CompileRequest) Backtrace() bool { return r.backtrace }
func (r CompileRequest) Code() string { return r.code }

// AssemblyFlavor returns the assembly flavor and whether one was set at all.
func (r CompileRequest) AssemblyFlavor() (AsmFlavor, bool) {
	return r.assemblyFlavor, r.hasAssemblyFlavor
}

func (r CompileRequest) MarshalJSON() ([]byte, error) {
	payload := compilePayload{
		Target:                  r.target,
		DemangleAssembly:        r.demangleAssembly,
		HideAssemblerDirectives: r.hideAssemblerDirectives,
		Channel:                 r.channel,
		Mode:                    r.mode,
		Edition:                 r.edition,
		CrateType:               r.crateType,
		Tests:                   r.tests,
		Backtrace:               r.backtrace,
		Code:                    r.code,
	}

	if r.hasAssemblyFlavor {
		flavor := r.assemblyFlavor
		payload.AssemblyFlavor = &flavor
	}

	return codec.Marshal(payload)
}

// CompileBuilder accumulates compile options. Every setter returns a modified
// copy, so a builder can be reused as a template without affecting requests
// already derived from it.
type CompileBuilder struct {
	request CompileRequest
	hasCode bool
}

// NewCompileBuilder returns a builder seeded with the code to compile and the
// default options.
func NewCompileBuilder(code string) CompileBuilder {
	return CompileBuilder{}.Code(code)
}

func (b CompileBuilder) Code(code string) CompileBuilder {
	b.request.code = code
	b.hasCode = true
	return b
}

func (b CompileBuilder) Target(target Target) CompileBuilder {
	b.request.target = target
	return b
}

func (b CompileBuilder) AssemblyFlavor(flavor AsmFlavor) CompileBuilder {
	b.request.assemblyFlavor = flavor
	b.request.hasAssemblyFlavor = true
	return b
}

func (b CompileBuilder) DemangleAssembly(demangle DemangleAssembly) CompileBuilder {
	b.request.demangleAssembly = demangle
	return b
}

func (b CompileBuilder) HideAssemblerDirectives(hide HideAssemblerDirectives) CompileBuilder {
	b.request.hideAssemblerDirectives = hide
	return b
}

func (b CompileBuilder) Channel(channel Channel) CompileBuilder {
	b.request.channel = channel
	return b
}

func (b CompileBuilder) Mode(mode Mode) CompileBuilder {
	b.request.mode = mode
	return b
}

func (b CompileBuilder) Edition(edition string) CompileBuilder {
	b.request.edition = edition
	return b
}

func (b CompileBuilder) CrateType(crateType CrateType) CompileBuilder {
	b.request.crateType = crateType
	return b
}

func (b CompileBuilder) Tests(tests bool) CompileBuilder {
	b.request.tests = tests
	return b
}

func (b CompileBuilder) Backtrace(backtrace bool) CompileBuilder {
	b.request.backtrace = backtrace
	return b
}

// Build returns the request, or a *MissingFieldError when no code was given.
func (b CompileBuilder) Build() (CompileRequest, error) {
	if err := requireCode(b.request.code, b.hasCode); err != nil {
		return CompileRequest{}, err
	}

	return b.request, nil
}

// CompileResponse is the result of a compile request.
type CompileResponse struct {
	// Indicates if the compilation succeeded.
	Success bool `json:"success"`
	// The compiler output in the requested target format.
	Code   string `json:"code"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}
