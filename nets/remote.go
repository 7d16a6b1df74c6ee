package nets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/qsearch/circuits"
)

// Remote executes programs on a sampler service: the program travels as
// JSON, the service replies with sample counts. Serve provides the other
// end.
type Remote struct {
	URL    string
	Client HTTPClient
}

func NewRemote(url string, client HTTPClient) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{
		URL:    url,
		Client: client,
	}
}

func (r *Remote) SupportsSampling() bool {
	return true
}

type executeResponse struct {
	Counts circuits.Counts `json:"counts,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (r *Remote) Execute(ctx context.Context, program circuits.Program) (circuits.Counts, error) {
	body, err := json.Marshal(program)
	if err != nil {
		return nil, wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(body))
	if err != nil {
		return nil, wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(err)
	}

	var decoded executeResponse
	if err := json.Unmarshal(content, &decoded); err != nil {
		return nil, wrap(fmt.Errorf("bad sampler response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return nil, wrap(fmt.Errorf("sampler: %s", decoded.Error))
		}
		return nil, wrap(fmt.Errorf("sampler: status %d", resp.StatusCode))
	}

	return decoded.Counts, nil
}
