//go:build !((amd64 && go1.18 && !go1.26) || (arm64 && go1.20 && !go1.26))

package playground

// Without the native decoder sonic falls back to encoding/json, whose errors
// describeDecodeError already handles.
func describeSonicError(error) (string, bool) {
	return "", false
}
