//go:generate mockgen -source=transport.go -destination=mock_transport_test.go -package=playground

package playground

import (
	"net/http"
)

// Doer sends a single HTTP request. *http.Client satisfies it; tests and
// callers with custom TLS or proxy setups can supply their own.
//
// Implementations must be safe for concurrent use, a Client shares its Doer
// between all in flight calls.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
