package nowpayments

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tomazmm/nowpayments-go/client"
)

// EstimatedPrice converts a fiat amount into its crypto equivalent at the
// current rate.
func (c *Client) EstimatedPrice(amount decimal.Decimal, currencyFrom FiatCurrency, currencyTo string) (map[string]any, error) {
	if amount.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if !currencyFrom.valid() {
		return nil, ErrUnsupportedFiat
	}
	if err := c.validatePayCurrency(currencyTo); err != nil {
		return nil, err
	}
	q := client.NewQueryBuilder()
	q.Add("amount", amount)
	q.Add("currency_from", currencyFrom)
	q.Add("currency_to", currencyTo)
	fastResp, err := c.httpClient.
		GET("/estimate").
		Query().SetRawString(q.String()).
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

// CreatePayment creates a direct payment the customer completes without
// leaving the merchant site. The pay currency is checked against a freshly
// fetched available-currency list before anything is sent.
func (c *Client) CreatePayment(req *PaymentRequest) (map[string]any, error) {
	if req.PriceAmount.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if !req.PriceCurrency.valid() {
		return nil, ErrUnsupportedFiat
	}
	if err := c.validatePayCurrency(req.PayCurrency); err != nil {
		return nil, err
	}
	fastResp, err := c.httpClient.
		POST("/payment").
		Header().Add("Content-Type", "application/x-www-form-urlencoded").
		Body().AsString(req.form().Encode()).
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

// PaymentStatus fetches the current state of a single payment.
func (c *Client) PaymentStatus(paymentId int64) (map[string]any, error) {
	if paymentId <= 0 {
		return nil, ErrInvalidPaymentId
	}
	fastResp, err := c.httpClient.
		GET("/payment/" + strconv.FormatInt(paymentId, 10)).
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

// MinimumPaymentAmount fetches the smallest accepted amount for a currency
// pair. The fiat equivalent is only forwarded when it names a supported fiat
// currency, mirroring how the gateway treats unknown tickers.
func (c *Client) MinimumPaymentAmount(req *MinAmountRequest) (map[string]any, error) {
	if req.CurrencyFrom == "" || req.CurrencyTo == "" {
		return nil, ErrMissingCurrency
	}
	q := client.NewQueryBuilder()
	q.Add("currency_from", req.CurrencyFrom)
	q.Add("currency_to", req.CurrencyTo)
	if req.FiatEquivalent.valid() {
		q.Add("fiat_equivalent", req.FiatEquivalent)
	}
	if req.IsFixedRate != nil {
		q.Add("is_fixed_rate", *req.IsFixedRate)
	}
	if req.IsFeePaidByUser != nil {
		q.Add("is_fee_paid_by_user", *req.IsFeePaidByUser)
	}
	fastResp, err := c.httpClient.
		GET("/min-amount").
		Query().SetRawString(q.String()).
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

// Payments lists every payment created with the configured API key. The
// listing endpoint is the only one that wants a bearer token, so a fresh one
// is fetched through Auth on every call.
func (c *Client) Payments(req *PaymentsRequest) (map[string]any, error) {
	params := req.withDefaults()
	if params.Limit < 1 || params.Limit > 500 {
		return nil, ErrLimitOutOfRange
	}
	if params.Page < 0 {
		return nil, ErrNegativePage
	}
	if !params.SortBy.valid() {
		return nil, ErrInvalidSortField
	}
	if !params.OrderBy.valid() {
		return nil, ErrInvalidSortOrder
	}
	auth, err := c.Auth()
	if err != nil {
		return nil, err
	}
	q := client.NewQueryBuilder()
	q.Add("limit", params.Limit)
	q.Add("page", params.Page)
	q.Add("sortBy", params.SortBy)
	q.Add("orderBy", params.OrderBy)
	fastResp, err := c.httpClient.
		GET("/payment").
		Query().SetRawString(q.String()).
		Header().Add("Authorization", "Bearer "+auth.Token).
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
