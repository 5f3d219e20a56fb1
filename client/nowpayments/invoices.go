package nowpayments

// CreateInvoice creates a hosted-checkout invoice. The customer follows the
// returned invoice_url to complete the payment.
func (c *Client) CreateInvoice(req *InvoiceRequest) (map[string]any, error) {
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
		POST("/invoice").
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

// CreatePaymentByInvoice attaches a payment to an existing invoice. Amount
// and fiat currency come from the invoice, only the pay currency needs
// validating here.
func (c *Client) CreatePaymentByInvoice(req *InvoicePaymentRequest) (map[string]any, error) {
	if req.InvoiceId <= 0 {
		return nil, ErrInvalidInvoiceId
	}
	if err := c.validatePayCurrency(req.PayCurrency); err != nil {
		return nil, err
	}
	fastResp, err := c.httpClient.
		POST("/invoice-payment").
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
