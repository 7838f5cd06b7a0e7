package playground

// LintRequest asks the playground to run clippy over the code.
type LintRequest struct {
	code string
}

func NewLintRequest(code string) LintRequest {
	return LintRequest{code: code}
}

func (r LintRequest) Code() string { return r.code }

func (r LintRequest) MarshalJSON() ([]byte, error) {
	return codec.Marshal(sourcePayload{Code: r.code})
}

type LintBuilder struct {
	code    string
	hasCode bool
}

func NewLintBuilder(code string) LintBuilder {
	return LintBuilder{}.Code(code)
}

func (b LintBuilder) Code(code string) LintBuilder {
	b.code = code
	b.hasCode = true
	return b
}

func (b LintBuilder) Build() (LintRequest, error) {
	if err := requireCode(b.code, b.hasCode); err != nil {
		return LintRequest{}, err
	}

	return LintRequest{code: b.code}, nil
}

// LintResponse is the result of a clippy run. Lints are reported on Stderr.
type LintResponse struct {
	Success bool   `json:"success"`
	Stdout  string `json:"stdout"`
	Stderr  string `json:"stderr"`
}
