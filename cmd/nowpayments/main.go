package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tomazmm/nowpayments-go/client/nowpayments"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Error("[NowPayments] API_KEY is not set")
		os.Exit(1)
	}
	npClient := nowpayments.NewClient(&nowpayments.Config{
		ApiKey:   apiKey,
		Email:    os.Getenv("EMAIL"),
		Password: os.Getenv("PASSWORD"),
		Sandbox:  os.Getenv("SANDBOX") != "",
	})

	status, err := npClient.Status()
	if err != nil {
		slog.Error("[NowPayments] Status request failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("status:", status["message"])

	currencies, err := npClient.Currencies(true)
	if err != nil {
		slog.Error("[NowPayments] Currencies request failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("available currencies: %d\n", len(currencies.Currencies))

	estimate, err := npClient.EstimatedPrice(decimal.NewFromInt(100), nowpayments.FIAT_USD, "btc")
	if err != nil {
		slog.Error("[NowPayments] Estimate request failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("100 usd ~ %v btc\n", estimate["estimated_amount"])

	// Creating payments against production would move real funds.
	if os.Getenv("SANDBOX") == "" {
		return
	}
	payment, err := npClient.CreatePayment(&nowpayments.PaymentRequest{
		PriceAmount:      decimal.NewFromInt(100),
		PriceCurrency:    nowpayments.FIAT_USD,
		PayCurrency:      "btc",
		OrderId:          uuid.NewString(),
		OrderDescription: "sandbox test payment",
	})
	if err != nil {
		slog.Error("[NowPayments] Create payment failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("payment %v created, status %v, pay %v %v to %v\n",
		payment["payment_id"], payment["payment_status"],
		payment["pay_amount"], payment["pay_currency"], payment["pay_address"])
}
