package offers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Upper bound on response bodies read into memory.
const maxBodyBytes = 4 << 20

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (a *AmadeusOfferProvider) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
	contentType string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// do executes req and returns the response body. Status codes >= 400 become
// *httpStatusError carrying the body text.
func (a *AmadeusOfferProvider) do(req *http.Request) ([]byte, error) {
	resp, err := a.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return b, nil
}
