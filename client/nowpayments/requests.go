package nowpayments

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// PaymentRequest shapes POST /payment. Optional fields left at their zero
// value are omitted from the outgoing form.
type PaymentRequest struct {
	PriceAmount   decimal.Decimal
	PriceCurrency FiatCurrency
	PayCurrency   string

	PayAmount        decimal.Decimal
	IpnCallbackUrl   string
	OrderId          string
	OrderDescription string
	PurchaseId       int64
	PayoutAddress    string
	PayoutCurrency   string
	PayoutExtraId    string
	FixedRate        bool
	IsFeePaidByUser  bool
}

func (r *PaymentRequest) form() url.Values {
	form := url.Values{}
	form.Set("price_amount", r.PriceAmount.String())
	form.Set("price_currency", string(r.PriceCurrency))
	form.Set("pay_currency", r.PayCurrency)
	if !r.PayAmount.IsZero() {
		form.Set("pay_amount", r.PayAmount.String())
	}
	setIfPresent(form, "ipn_callback_url", r.IpnCallbackUrl)
	setIfPresent(form, "order_id", r.OrderId)
	setIfPresent(form, "order_description", r.OrderDescription)
	if r.PurchaseId != 0 {
		form.Set("purchase_id", strconv.FormatInt(r.PurchaseId, 10))
	}
	setIfPresent(form, "payout_address", r.PayoutAddress)
	setIfPresent(form, "payout_currency", r.PayoutCurrency)
	setIfPresent(form, "payout_extra_id", r.PayoutExtraId)
	if r.FixedRate {
		form.Set("fixed_rate", "true")
	}
	if r.IsFeePaidByUser {
		form.Set("is_fee_paid_by_user", "true")
	}
	return form
}

// InvoiceRequest shapes POST /invoice. No payout routing here, the invoice
// flow settles to the merchant wallet.
type InvoiceRequest struct {
	PriceAmount   decimal.Decimal
	PriceCurrency FiatCurrency
	PayCurrency   string

	IpnCallbackUrl   string
	OrderId          string
	OrderDescription string
	SuccessUrl       string
	CancelUrl        string
}

func (r *InvoiceRequest) form() url.Values {
	form := url.Values{}
	form.Set("price_amount", r.PriceAmount.String())
	form.Set("price_currency", string(r.PriceCurrency))
	form.Set("pay_currency", r.PayCurrency)
	setIfPresent(form, "ipn_callback_url", r.IpnCallbackUrl)
	setIfPresent(form, "order_id", r.OrderId)
	setIfPresent(form, "order_description", r.OrderDescription)
	setIfPresent(form, "success_url", r.SuccessUrl)
	setIfPresent(form, "cancel_url", r.CancelUrl)
	return form
}

// InvoicePaymentRequest shapes POST /invoice-payment. The amount is inherited
// from the referenced invoice.
type InvoicePaymentRequest struct {
	InvoiceId   int64
	PayCurrency string

	PurchaseId       int64
	OrderDescription string
	CustomerEmail    string
	PayoutAddress    string
	PayoutCurrency   string
	PayoutExtraId    string
}

func (r *InvoicePaymentRequest) form() url.Values {
	form := url.Values{}
	form.Set("iid", strconv.FormatInt(r.InvoiceId, 10))
	form.Set("pay_currency", r.PayCurrency)
	if r.PurchaseId != 0 {
		form.Set("purchase_id", strconv.FormatInt(r.PurchaseId, 10))
	}
	setIfPresent(form, "order_description", r.OrderDescription)
	setIfPresent(form, "customer_email", r.CustomerEmail)
	setIfPresent(form, "payout_address", r.PayoutAddress)
	setIfPresent(form, "payout_currency", r.PayoutCurrency)
	setIfPresent(form, "payout_extra_id", r.PayoutExtraId)
	return form
}

// MinAmountRequest shapes GET /min-amount. The boolean flags are pointers
// because the gateway distinguishes an absent flag from an explicit false.
type MinAmountRequest struct {
	CurrencyFrom string
	CurrencyTo   string

	// Appended only when it names a supported fiat currency.
	FiatEquivalent  FiatCurrency
	IsFixedRate     *bool
	IsFeePaidByUser *bool
}

// PaymentsRequest shapes the paginated GET /payment listing. Zero values fall
// back to limit 10, page 0, sorted by created_at ascending.
type PaymentsRequest struct {
	Limit   int
	Page    int
	SortBy  SortField
	OrderBy SortOrder
}

func (r *PaymentsRequest) withDefaults() PaymentsRequest {
	out := *r
	if out.Limit == 0 {
		out.Limit = 10
	}
	if out.SortBy == "" {
		out.SortBy = SORT_CREATED_AT
	}
	if out.OrderBy == "" {
		out.OrderBy = ORDER_ASC
	}
	return out
}

func setIfPresent(form url.Values, key string, value string) {
	if value != "" {
		form.Set(key, value)
	}
}
