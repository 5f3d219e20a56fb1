package nowpayments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway is an httptest stand-in for the payment gateway. It counts
// hits per path so tests can prove a validation error never reached the
// network.
type fakeGateway struct {
	mux  *http.ServeMux
	srv  *httptest.Server
	hits map[string]int
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()
	g := &fakeGateway{mux: http.NewServeMux(), hits: map[string]int{}}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.hits[r.URL.Path]++
		g.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(g.srv.Close)
	return g
}

func (g *fakeGateway) client(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}
	if config.ApiKey == "" {
		config.ApiKey = "test-key"
	}
	config.BaseURL = g.srv.URL
	return NewClient(config)
}

func (g *fakeGateway) serveJSON(path string, payload any) {
	g.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	})
}

func (g *fakeGateway) serveCurrencies(currencies ...string) {
	g.serveJSON("/currencies", map[string]any{"currencies": currencies})
}

func TestApiBase(t *testing.T) {
	assert.Equal(t, "https://api.nowpayments.io/v1", apiBase(&Config{ApiKey: "key"}))
	assert.Equal(t, "https://api-sandbox.nowpayments.io/v1", apiBase(&Config{ApiKey: "key", Sandbox: true}))
	assert.Equal(t, "http://localhost:1234", apiBase(&Config{ApiKey: "key", Sandbox: true, BaseURL: "http://localhost:1234"}))
}

func TestNewClientKeepsConfig(t *testing.T) {
	config := &Config{ApiKey: "key", Email: "merchant@example.org", Password: "hunter2", Sandbox: true}
	c := NewClient(config)
	assert.Equal(t, "key", c.config.ApiKey)
	assert.Equal(t, "merchant@example.org", c.config.Email)
	assert.Equal(t, "hunter2", c.config.Password)
	assert.True(t, c.config.Sandbox)

	c = NewClient(&Config{ApiKey: "key", Sandbox: true})
	assert.Empty(t, c.config.Email)
	assert.Empty(t, c.config.Password)
}

func TestStatus(t *testing.T) {
	g := newFakeGateway(t)
	var apiKey string
	g.mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"message": "OK"})
	})

	status, err := g.client(nil).Status()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"message": "OK"}, status)
	assert.Equal(t, "test-key", apiKey)
}

func TestStatusError(t *testing.T) {
	g := newFakeGateway(t)
	g.mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"down for maintenance"}`))
	})

	_, err := g.client(nil).Status()
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "down for maintenance", apiErr.Message)
}

func TestStatusErrorWithoutMessage(t *testing.T) {
	g := newFakeGateway(t)
	g.mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := g.client(nil).Status()
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "no description", apiErr.Message)
}

func TestAuth(t *testing.T) {
	g := newFakeGateway(t)
	var email, password string
	g.mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		email = r.PostForm.Get("email")
		password = r.PostForm.Get("password")
		json.NewEncoder(w).Encode(map[string]any{"token": "jwt-token"})
	})

	auth, err := g.client(&Config{Email: "merchant@example.org", Password: "hunter2"}).Auth()
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", auth.Token)
	assert.Equal(t, "merchant@example.org", email)
	assert.Equal(t, "hunter2", password)
}

func TestAuthMissingCredentials(t *testing.T) {
	g := newFakeGateway(t)

	_, err := g.client(nil).Auth()
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, g.hits["/auth"])

	_, err = g.client(&Config{Email: "merchant@example.org"}).Auth()
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, g.hits["/auth"])
}

func TestCurrencies(t *testing.T) {
	g := newFakeGateway(t)
	var fixedRate string
	g.mux.HandleFunc("/currencies", func(w http.ResponseWriter, r *http.Request) {
		fixedRate = r.URL.Query().Get("fixed_rate")
		json.NewEncoder(w).Encode(map[string]any{"currencies": []string{"btc", "eth", "ltc"}})
	})

	currencies, err := g.client(nil).Currencies(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"btc", "eth", "ltc"}, currencies.Currencies)
	assert.Equal(t, "true", fixedRate)

	_, err = g.client(nil).Currencies(false)
	require.NoError(t, err)
	assert.Equal(t, "false", fixedRate)
}

func TestFullCurrencies(t *testing.T) {
	g := newFakeGateway(t)
	g.serveJSON("/full-currencies", map[string]any{
		"currencies": []map[string]any{{"code": "BTC", "network": "btc"}},
	})

	data, err := g.client(nil).FullCurrencies()
	require.NoError(t, err)
	assert.Contains(t, data, "currencies")
}

func TestMerchantCoins(t *testing.T) {
	g := newFakeGateway(t)
	g.serveJSON("/merchant/coins", map[string]any{"selectedCurrencies": []string{"btc", "eth"}})

	data, err := g.client(nil).MerchantCoins()
	require.NoError(t, err)
	assert.Equal(t, []any{"btc", "eth"}, data["selectedCurrencies"])
}
