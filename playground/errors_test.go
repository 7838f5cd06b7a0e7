package playground

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{{
		name: "empty body",
		body: "  \n",
		want: "playground: failed to decode response: response body must not be empty",
	}, {
		name: "not json",
		body: "this is not json",
		want: "playground: failed to decode response: response body contains badly-formed JSON (at position",
	}, {
		name: "truncated json",
		body: `{"success":tru`,
		want: "playground: failed to decode response: response body contains badly-formed JSON",
	}, {
		name: "wrong type",
		body: `{"success":"yes"}`,
		want: "playground: failed to decode response: response body contains an invalid value",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out ExecuteResponse
			err := decode([]byte(tt.body), &out)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCodec))

			message := err.Error()

			assert.Contains(t, message, tt.want)
			assert.NotContains(t, message, "\n")
			assert.NotContains(t, message, "yes")
			assert.NotContains(t, message, "this is not json")
		})
	}
}

func TestServiceFaultMessage(t *testing.T) {
	tests := []struct {
		name  string
		fault ServiceFault
		want  string
	}{{
		name:  "registered status",
		fault: ServiceFault{Status: 400, Message: "invalid channel"},
		want:  "playground: 400 Bad Request: invalid channel",
	}, {
		name:  "unregistered status",
		fault: ServiceFault{Status: 599, Message: "upstream timeout"},
		want:  "playground: 599: upstream timeout",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fault.Error())
		})
	}
}
