package playground

// FormatRequest asks the playground to run rustfmt over the code.
type FormatRequest struct {
	code string
}

type sourcePayload struct {
	Code string `json:"code"`
}

func NewFormatRequest(code string) FormatRequest {
	return FormatRequest{code: code}
}

func (r FormatRequest) Code() string { return r.code }

func (r FormatRequest) MarshalJSON() ([]byte, error) {
	return codec.Marshal(sourcePayload{Code: r.code})
}

type FormatBuilder struct {
	code    string
	hasCode bool
}

func NewFormatBuilder(code string) FormatBuilder {
	return FormatBuilder{}.Code(code)
}

func (b FormatBuilder) Code(code string) FormatBuilder {
	b.code = code
	b.hasCode = true
	return b
}

func (b FormatBuilder) Build() (FormatRequest, error) {
	if err := requireCode(b.code, b.hasCode); err != nil {
		return FormatRequest{}, err
	}

	return FormatRequest{code: b.code}, nil
}

// FormatResponse is the result of a format request.
type FormatResponse struct {
	Success bool `json:"success"`
	// The formatted code.
	Code   string `json:"code"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}
