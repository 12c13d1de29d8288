package utils

import (
	"crowdfund/config"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// RazorpayOrder is the subset of the gateway order response the backend
// needs.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // in paise
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Receipt  string `json:"receipt"`
}

// CreateRazorpayOrder creates a payment order with the gateway. Amount is in
// rupees; the gateway wants paise.
func CreateRazorpayOrder(amount float64) (*RazorpayOrder, error) {
	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":          int64(amount * 100),
			"currency":        "INR",
			"receipt":         fmt.Sprintf("rcp_%d", time.Now().UnixMilli()%1e10),
			"payment_capture": 1,
		}).
		Post(config.AppConfig.RazorpayApiURL + "/orders")
	if err != nil {
		log.Printf("Failed to create razorpay order: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Razorpay order creation failed: %d, %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("razorpay order creation failed, code: %d", resp.StatusCode())
	}

	var order RazorpayOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		log.Printf("Failed to parse razorpay order response: %v", err)
		return nil, err
	}

	return &order, nil
}

// VerifyRazorpaySignature checks the gateway's HMAC-SHA256 signature over
// "<orderId>|<paymentId>". Donations from the gateway path must pass this
// before the ledger is touched.
func VerifyRazorpaySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(config.AppConfig.RazorpayKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
