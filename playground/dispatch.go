package playground

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// codec is configured to behave like encoding/json so that text marshalers,
// omitempty and field names follow the standard library rules.
var codec = sonic.ConfigStd

// faultBody is the shape of every non-success response of the playground.
type faultBody struct {
	Error *string `json:"error"`
}

// dispatch performs exactly one POST of the json encoded request to
// baseURL+path and decodes the buffered response body into Resp.
func dispatch[Req, Resp any](ctx context.Context, c *Client, path string, in Req) (Resp, error) {
	var out Resp

	url := c.baseURL + path
	logger := c.logger.With().
		Str("call_id", uuid.NewString()).
		Str("endpoint", path).
		Logger()

	payload, err := codec.Marshal(in)

	if err != nil {
		return out, &CodecError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))

	if err != nil {
		return out, &TransportError{Method: http.MethodPost, URL: url, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)

	if err != nil {
		logger.Debug().Err(err).Dur("duration", time.Since(start)).Msg("playground request failed")
		return out, &TransportError{Method: http.MethodPost, URL: url, Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		logger.Debug().Err(err).Int("status", resp.StatusCode).Msg("failed to read playground response")
		return out, &TransportError{
			Method: http.MethodPost,
			URL:    url,
			Err:    errors.Wrap(err, "failed to read response body"),
		}
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("playground response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := decode(body, &out); err != nil {
			var zero Resp
			return zero, err
		}

		return out, nil
	}

	var fault faultBody

	if err := decode(body, &fault); err != nil {
		return out, err
	}

	if fault.Error == nil {
		return out, &CodecError{Op: "decode", Err: errors.New(`error body is missing the "error" field`)}
	}

	return out, &ServiceFault{Status: resp.StatusCode, Message: *fault.Error}
}

func decode(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &CodecError{Op: "decode", Err: errEmptyBody}
	}

	if err := codec.Unmarshal(body, v); err != nil {
		return &CodecError{Op: "decode", Err: err}
	}

	return nil
}
