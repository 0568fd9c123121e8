// Package update checks GitHub for newer published releases.
package update

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/ports"
	"github.com/amantham20/aqs-go/internal/version"
)

// Checker queries the GitHub releases API for a repository.
type Checker struct {
	client  *resty.Client
	baseURL string
}

// NewChecker builds a release checker with a 10 second timeout.
func NewChecker() *Checker {
	return newCheckerAt("https://api.github.com")
}

func newCheckerAt(baseURL string) *Checker {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetHeader("User-Agent", "aqs/"+version.Version)
	return &Checker{client: client, baseURL: baseURL}
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Latest implements ports.ReleaseChecker.
func (c *Checker) Latest(ctx context.Context, repository string) (domain.ReleaseInfo, error) {
	var release releaseResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&release).
		Get(fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, repository))
	if err != nil {
		return domain.ReleaseInfo{}, fmt.Errorf("query releases: %w", err)
	}
	if resp.IsError() {
		return domain.ReleaseInfo{}, fmt.Errorf("query releases: %s", resp.Status())
	}
	if release.TagName == "" {
		return domain.ReleaseInfo{}, fmt.Errorf("no release published for %s", repository)
	}
	return domain.ReleaseInfo{
		TagName: release.TagName,
		Name:    release.Name,
		URL:     release.HTMLURL,
	}, nil
}

var _ ports.ReleaseChecker = (*Checker)(nil)
