// Package coveralls submits coverage results to a Coveralls-compatible
// endpoint.
package coveralls

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/environ"
)

// DefaultEndpoint is the public Coveralls job intake API.
const DefaultEndpoint = "https://coveralls.io/api/v1/jobs"

// Environment keys the reporter honors at submit time.
const (
	// EnvRepoToken authenticates the submission for private repositories.
	EnvRepoToken = "COVERALLS_REPO_TOKEN"
	// EnvEndpoint overrides the intake endpoint, e.g. for an enterprise
	// installation.
	EnvEndpoint = "COVERALLS_ENDPOINT"
)

type payload struct {
	ServiceName  string `json:"service_name"`
	ServiceJobID string `json:"service_job_id"`
	RepoToken    string `json:"repo_token,omitempty"`
}

// Reporter implements collab.CoverageReporter against the Coveralls API.
type Reporter struct {
	endpoint string
	client   *resty.Client
}

// New creates a reporter. An empty endpoint selects DefaultEndpoint.
func New(endpoint string) *Reporter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Reporter{
		endpoint: endpoint,
		client:   resty.New(),
	}
}

// Name implements collab.CoverageReporter.
func (r *Reporter) Name() string {
	return "coveralls"
}

// Submit implements collab.CoverageReporter.
func (r *Reporter) Submit(ctx context.Context, report collab.Report, env environ.Env) error {
	endpoint := r.endpoint
	if override := env.Get(EnvEndpoint); override != "" {
		endpoint = override
	}

	body := payload{
		ServiceName:  "matrixci",
		ServiceJobID: report.JobID,
		RepoToken:    env.Get(EnvRepoToken),
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("coveralls: submit job %q: %w", report.JobName, err)
	}
	if resp.IsError() {
		return fmt.Errorf("coveralls: submit job %q: unexpected status %s", report.JobName, resp.Status())
	}
	return nil
}
