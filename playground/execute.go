package playground

// ExecuteRequest holds the parameters for building and running rust code.
type ExecuteRequest struct {
	channel   Channel
	mode      Mode
	crateType CrateType
	tests     bool
	backtrace bool
	code      string
}

type executePayload struct {
	Channel   Channel   `json:"channel"`
	Mode      Mode      `json:"mode"`
	CrateType CrateType `json:"crateType"`
	Tests     bool      `json:"tests"`
	Backtrace bool      `json:"backtrace"`
	Code      string    `json:"code"`
}

// NewExecuteRequest returns a request with the default execution options.
func NewExecuteRequest(code string) ExecuteRequest {
	return ExecuteRequest{code: code}
}

func (r ExecuteRequest) Channel() Channel { return r.channel }
func (r ExecuteRequest) Mode() Mode { return r.mode }
func (r ExecuteRequest) CrateType() CrateType { return r.crateType }
func (r ExecuteRequest) Tests() bool { return r.tests }
func (r ExecuteRequest) Backtrace() bool { return r.backtrace }
func (r ExecuteRequest) Code() string { return r.code }

func (r ExecuteRequest) MarshalJSON() ([]byte, error) {
	return codec.Marshal(executePayload{
		Channel:   r.channel,
		Mode:      r.mode,
		CrateType: r.crateType,
		Tests:     r.tests,
		Backtrace: r.backtrace,
		Code:      r.code,
	})
}

// ExecuteBuilder accumulates execution options, see CompileBuilder.
type ExecuteBuilder struct {
	request ExecuteRequest
	hasCode bool
}

func NewExecuteBuilder(code string) ExecuteBuilder {
	return ExecuteBuilder{}.Code(code)
}

func (b ExecuteBuilder) Code(code string) ExecuteBuilder {
	b.request.code = code
	b.hasCode = true
	return b
}

func (b ExecuteBuilder) Channel(channel Channel) ExecuteBuilder {
	b.request.channel = channel
	return b
}

func (b ExecuteBuilder) Mode(mode Mode) ExecuteBuilder {
	b.request.mode = mode
	return b
}

func (b ExecuteBuilder) CrateType(crateType CrateType) ExecuteBuilder {
	b.request.crateType = crateType
	return b
}

func (b ExecuteBuilder) Tests(tests bool) ExecuteBuilder {
	b.request.tests = tests
	return b
}

func (b ExecuteBuilder) Backtrace(backtrace bool) ExecuteBuilder {
	b.request.backtrace = backtrace
	return b
}

func (b ExecuteBuilder) Build() (ExecuteRequest, error) {
	if err := requireCode(b.request.code, b.hasCode); err != nil {
		return ExecuteRequest{}, err
	}

	return b.request, nil
}

// ExecuteResponse is the result of an execute request. Stdout holds the
// program output, Stderr the compiler and runtime diagnostics.
type ExecuteResponse struct {
	Success bool   `json:"success"`
	Stdout  string `json:"stdout"`
	Stderr  string `json:"stderr"`
}
