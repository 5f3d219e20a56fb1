package nowpayments

import (
	"net/url"

	"github.com/tomazmm/nowpayments-go/client"
)

// Status reports the current state of the API. A healthy gateway answers
// {"message": "OK"}.
func (c *Client) Status() (map[string]any, error) {
	fastResp, err := c.httpClient.
		GET("/status").
		Send()
	if err != nil {
		return nil, err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return nil, newAPIError(fastResp.Status().Code(), body)
	}
	var data map[string]any
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Auth trades the configured dashboard email/password for a JWT token. The
// gateway expires these tokens after five minutes, so callers fetch a fresh
// one per request instead of holding on to it.
func (c *Client) Auth() (*AuthResponse, error) {
	if c.config.Email == "" || c.config.Password == "" {
		return nil, ErrMissingCredentials
	}
	form := url.Values{}
	form.Set("email", c.config.Email)
	form.Set("password", c.config.Password)
	fastResp, err := c.httpClient.
		POST("/auth").
		Header().Add("Content-Type", "application/x-www-form-urlencoded").
		Body().AsString(form.Encode()).
		Send()
	if err != nil {
		return nil, err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return nil, newAPIError(fastResp.Status().Code(), body)
	}
	var data AuthResponse
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Currencies lists the cryptocurrencies available for the current payout
// wallet setup. Creation operations call it to validate pay currencies, so
// the membership check is always against a fresh list.
func (c *Client) Currencies(fixedRate bool) (*CurrenciesResponse, error) {
	q := client.NewQueryBuilder()
	q.Add("fixed_rate", fixedRate)
	fastResp, err := c.httpClient.
		GET("/currencies").
		Query().SetRawString(q.String()).
		Send()
	if err != nil {
		return nil, err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return nil, newAPIError(fastResp.Status().Code(), body)
	}
	var data CurrenciesResponse
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// FullCurrencies lists every cryptocurrency the gateway knows about, with
// network and precision details.
func (c *Client) FullCurrencies() (map[string]any, error) {
	fastResp, err := c.httpClient.
		GET("/full-currencies").
		Send()
	if err != nil {
		return nil, err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return nil, newAPIError(fastResp.Status().Code(), body)
	}
	var data map[string]any
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// MerchantCoins lists the coins enabled in the merchant's coins settings tab.
func (c *Client) MerchantCoins() (map[string]any, error) {
	fastResp, err := c.httpClient.
		GET("/merchant/coins").
		Send()
	if err != nil {
		return nil, err
	}
	if fastResp.Status().IsError() {
		body, _ := fastResp.Body().AsString()
		return nil, newAPIError(fastResp.Status().Code(), body)
	}
	var data map[string]any
	err = fastResp.Body().AsJSON(&data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) validatePayCurrency(currency string) error {
	currencies, err := c.Currencies(true)
	if err != nil {
		return err
	}
	if !currencies.contains(currency) {
		return ErrUnsupportedCryptocurrency
	}
	return nil
}
