//go:build (amd64 && go1.18 && !go1.26) || (arm64 && go1.20 && !go1.26)

package playground

import (
	"fmt"

	"github.com/bytedance/sonic/decoder"
	"github.com/pkg/errors"
)

// describeSonicError handles the errors of sonic's native decoder. Syntax
// errors come back as values, type mismatches as pointers; both are matched.
func describeSonicError(err error) (string, bool) {
	if syntaxError, ok := asSonicError[decoder.SyntaxError](err); ok {
		return fmt.Sprintf("response body contains badly-formed JSON (at position %d)", syntaxError.Pos), true
	}

	if mismatch, ok := asSonicError[decoder.MismatchTypeError](err); ok {
		if mismatch.Type == nil {
			return fmt.Sprintf("response body contains an invalid value (at position %d)", mismatch.Pos), true
		}

		return fmt.Sprintf("response body contains an invalid value (at position %d, expected %s)",
			mismatch.Pos, mismatch.Type), true
	}

	return "", false
}

func asSonicError[T error](err error) (T, bool) {
	var value T
	var pointer *T

	if errors.As(err, &value) {
		return value, true
	}

	if errors.As(err, &pointer) && pointer != nil {
		return *pointer, true
	}

	return value, false
}
