// Package notion provides a thin client for the Notion database API,
// covering the query, page-create, and page-update operations the sync
// needs.
package notion

import (
	"context"
	"fmt"

	"github.com/vitalsync/vitalsync/internal/metrics"
	"github.com/vitalsync/vitalsync/internal/transport"
)

// DefaultBaseURL is the Notion API base URL.
const DefaultBaseURL = "https://api.notion.com"

// apiVersion pins the Notion API revision this client targets.
const apiVersion = "2022-06-28"

// Client talks to one Notion database.
type Client struct {
	baseURL    string
	databaseID string
	transport  *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a Notion client for the given integration token and
// database.
func NewClient(token, databaseID string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		databaseID: databaseID,
		transport:  transport.New("notion", &transport.BearerAuth{Token: token}),
	}
	c.transport.SetHeader("Notion-Version", apiVersion)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryByDate returns the IDs of pages whose Date property equals day,
// in the order the API returned them.
func (c *Client) QueryByDate(ctx context.Context, day metrics.DayKey) ([]string, error) {
	req := queryRequest{
		Filter: propertyFilter{
			Property: datePropertyName,
			Date:     dateFilter{Equals: day.String()},
		},
	}

	var resp queryResponse
	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, c.databaseID)
	if err := c.transport.Post(ctx, url, req, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// Create adds a new page for day carrying the given fields plus the Date
// property.
func (c *Client) Create(ctx context.Context, day metrics.DayKey, fields metrics.Fields) error {
	props := encodeProperties(fields)
	props[datePropertyName] = dateProperty(day)

	req := createPageRequest{
		Parent:     parentRef{DatabaseID: c.databaseID},
		Properties: props,
	}
	return c.transport.Post(ctx, c.baseURL+"/v1/pages", req, nil)
}

// Update overwrites the given fields on an existing page. The Date property
// is never part of an update.
func (c *Client) Update(ctx context.Context, pageID string, fields metrics.Fields) error {
	req := updatePageRequest{Properties: encodeProperties(fields)}
	url := fmt.Sprintf("%s/v1/pages/%s", c.baseURL, pageID)
	return c.transport.Patch(ctx, url, req, nil)
}
