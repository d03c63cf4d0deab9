// Package garmin provides a thin client for the Garmin Connect wellness API.
package garmin

import (
	"context"
	"fmt"

	"github.com/vitalsync/vitalsync/internal/transport"
	"github.com/vitalsync/vitalsync/pkg/errors"
	"github.com/vitalsync/vitalsync/pkg/logging"
)

// DefaultBaseURL is the Garmin Connect API base URL.
const DefaultBaseURL = "https://connectapi.garmin.com"

// Client talks to the Garmin Connect wellness endpoints. It must be logged
// in before any metric read.
type Client struct {
	baseURL   string
	email     string
	password  string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a Garmin client for the given account credentials.
func NewClient(email, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		email:     email,
		password:  password,
		transport: transport.New("garmin", &transport.NoAuth{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges the account credentials for a session token. All metric
// reads require a prior successful login; a failure here is fatal to the run.
func (c *Client) Login(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Info().Msg("Connecting to Garmin Connect")

	var resp loginResponse
	err := c.transport.Post(ctx, c.baseURL+"/auth/login", loginRequest{Email: c.email, Password: c.password}, &resp)
	if err != nil {
		return &errors.AuthenticationError{
			Service: "garmin",
			Method:  "password",
			Message: "login failed",
			Err:     err,
		}
	}
	if resp.AccessToken == "" {
		return &errors.AuthenticationError{
			Service: "garmin",
			Method:  "password",
			Message: "login response missing access token",
		}
	}

	c.transport.SetAuth(&transport.BearerAuth{Token: resp.AccessToken})
	log.Info().Msg("Successfully connected to Garmin")
	return nil
}

// HRV fetches the heart-rate-variability summary for a date (YYYY-MM-DD).
func (c *Client) HRV(ctx context.Context, date string) (*HRVData, error) {
	var data HRVData
	url := fmt.Sprintf("%s/hrv-service/hrv/%s", c.baseURL, date)
	if err := c.transport.Get(ctx, url, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// RestingHeartRate fetches the resting-heart-rate metrics for a date.
func (c *Client) RestingHeartRate(ctx context.Context, date string) (*RestingHeartRateData, error) {
	var data RestingHeartRateData
	url := fmt.Sprintf("%s/usersummary-service/stats/heartRate/daily/%s/%s", c.baseURL, date, date)
	if err := c.transport.Get(ctx, url, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// MaxMetrics fetches the VO2 max / fitness age estimate for a date.
func (c *Client) MaxMetrics(ctx context.Context, date string) (*MaxMetrics, error) {
	var data MaxMetrics
	url := fmt.Sprintf("%s/metrics-service/metrics/maxmet/daily/%s", c.baseURL, date)
	if err := c.transport.Get(ctx, url, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
