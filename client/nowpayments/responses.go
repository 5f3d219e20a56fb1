package nowpayments

// Auth [/auth]
type AuthResponse struct {
	Token string `json:"token"`
}

// Available currencies [/currencies]
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

func (r *CurrenciesResponse) contains(currency string) bool {
	for _, c := range r.Currencies {
		if c == currency {
			return true
		}
	}
	return false
}
