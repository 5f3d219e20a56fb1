package nowpayments

import (
	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const (
	baseUrl        = "https://api.nowpayments.io/v1"
	sandboxBaseUrl = "https://api-sandbox.nowpayments.io/v1"
)

type Config struct {
	ApiKey   string
	Email    string
	Password string
	// IpnSecret is only needed for VerifyIPN.
	IpnSecret string
	Sandbox   bool
	// BaseURL overrides the origin selected by Sandbox.
	BaseURL string
}

type Client struct {
	config     *Config
	httpClient fastshot.ClientHttpMethods
}

func NewClient(config *Config) *Client {
	httpClient := setupHttpClient(config)
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

func apiBase(config *Config) string {
	if config.BaseURL != "" {
		return config.BaseURL
	}
	if config.Sandbox {
		return sandboxBaseUrl
	}
	return baseUrl
}

func setupHttpClient(config *Config) fastshot.ClientHttpMethods {
	return fastshot.NewClient(apiBase(config)).
		Header().Add("x-api-key", config.ApiKey).
		Header().AddAccept(mime.JSON).
		Build()
}
