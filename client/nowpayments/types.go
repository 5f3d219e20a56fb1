package nowpayments

// Fiat currencies accepted for price amounts
type FiatCurrency string

const (
	FIAT_USD FiatCurrency = "usd"
	FIAT_EUR FiatCurrency = "eur"
	FIAT_NZD FiatCurrency = "nzd"
	FIAT_BRL FiatCurrency = "brl"
	FIAT_GBP FiatCurrency = "gbp"
)

func (f FiatCurrency) valid() bool {
	switch f {
	case FIAT_USD, FIAT_EUR, FIAT_NZD, FIAT_BRL, FIAT_GBP:
		return true
	}
	return false
}

// Payment statuses
type PaymentStatus string

const (
	PAYMENT_STATUS_WAITING        PaymentStatus = "waiting"
	PAYMENT_STATUS_CONFIRMING     PaymentStatus = "confirming"
	PAYMENT_STATUS_CONFIRMED      PaymentStatus = "confirmed"
	PAYMENT_STATUS_SENDING        PaymentStatus = "sending"
	PAYMENT_STATUS_PARTIALLY_PAID PaymentStatus = "partially_paid"
	PAYMENT_STATUS_FINISHED       PaymentStatus = "finished"
	PAYMENT_STATUS_FAILED         PaymentStatus = "failed"
	PAYMENT_STATUS_REFUNDED       PaymentStatus = "refunded"
	PAYMENT_STATUS_EXPIRED        PaymentStatus = "expired"
)

// Sort fields accepted by the payment listing endpoint
type SortField string

const (
	SORT_CREATED_AT        SortField = "created_at"
	SORT_PAYMENT_ID        SortField = "payment_id"
	SORT_PAYMENT_STATUS    SortField = "payment_status"
	SORT_PAY_ADDRESS       SortField = "pay_address"
	SORT_PRICE_AMOUNT      SortField = "price_amount"
	SORT_PRICE_CURRENCY    SortField = "price_currency"
	SORT_PAY_AMOUNT        SortField = "pay_amount"
	SORT_ACTUALLY_PAID     SortField = "actually_paid"
	SORT_PAY_CURRENCY      SortField = "pay_currency"
	SORT_ORDER_ID          SortField = "order_id"
	SORT_ORDER_DESCRIPTION SortField = "order_description"
	SORT_PURCHASE_ID       SortField = "purchase_id"
	SORT_OUTCOME_AMOUNT    SortField = "outcome_amount"
	SORT_OUTCOME_CURRENCY  SortField = "outcome_currency"
)

func (s SortField) valid() bool {
	switch s {
	case SORT_CREATED_AT, SORT_PAYMENT_ID, SORT_PAYMENT_STATUS, SORT_PAY_ADDRESS,
		SORT_PRICE_AMOUNT, SORT_PRICE_CURRENCY, SORT_PAY_AMOUNT, SORT_ACTUALLY_PAID,
		SORT_PAY_CURRENCY, SORT_ORDER_ID, SORT_ORDER_DESCRIPTION, SORT_PURCHASE_ID,
		SORT_OUTCOME_AMOUNT, SORT_OUTCOME_CURRENCY:
		return true
	}
	return false
}

// Sort directions
type SortOrder string

const (
	ORDER_ASC  SortOrder = "asc"
	ORDER_DESC SortOrder = "desc"
)

func (o SortOrder) valid() bool {
	return o == ORDER_ASC || o == ORDER_DESC
}
