package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/vitalsync/pkg/errors"
)

func TestBearerAuthApplied(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New("notion", &BearerAuth{Token: "secret"})
	var out map[string]any
	require.NoError(t, c.Get(context.Background(), srv.URL, &out))

	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestVersionHeaderApplied(t *testing.T) {
	var gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("Notion-Version")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New("notion", &NoAuth{})
	c.SetHeader("Notion-Version", "2022-06-28")
	var out map[string]any
	require.NoError(t, c.Get(context.Background(), srv.URL, &out))

	assert.Equal(t, "2022-06-28", gotVersion)
}

func TestGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"vo2MaxValue": 48.5}`))
	}))
	defer srv.Close()

	c := New("garmin", &NoAuth{})
	var out struct {
		VO2MaxValue float64 `json:"vo2MaxValue"`
	}
	require.NoError(t, c.Get(context.Background(), srv.URL, &out))
	assert.Equal(t, 48.5, out.VO2MaxValue)
}

func TestNonOKStatusBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("garmin", &NoAuth{})
	err := c.Get(context.Background(), srv.URL, &map[string]any{})

	require.Error(t, err)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "garmin", apiErr.Service)
	assert.True(t, errors.IsRateLimited(err))
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New("notion", &NoAuth{})
	require.NoError(t, c.Post(context.Background(), srv.URL, map[string]string{"k": "v"}, nil))

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"k":"v"}`, gotBody)
}

func TestMalformedJSONBecomesParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New("garmin", &NoAuth{})
	err := c.Get(context.Background(), srv.URL, &map[string]any{})

	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
