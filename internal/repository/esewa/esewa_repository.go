package esewa

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"

	"github.com/pobyzaarif/goshortcute"
)

// ErrGatewayDisabled is returned when online payments are switched off via
// configuration; callers fall back to cash on delivery.
var ErrGatewayDisabled = errors.New("esewa gateway is disabled")

type EsewaConfig struct {
	EsewaMerchantCode string
	EsewaSecretKey    string
	EsewaPaymentUrl   string
	SuccessUrl        string
	FailureUrl        string
	EsewaEnabled      bool
}

type EsewaRepository struct {
	esewaConfig EsewaConfig
}

func NewEsewaRepository(cfg EsewaConfig) *EsewaRepository {
	return &EsewaRepository{
		cfg,
	}
}

func (r EsewaRepository) Enabled() bool {
	return r.esewaConfig.EsewaEnabled
}

func (r EsewaRepository) GatewayURL() string {
	return r.esewaConfig.EsewaPaymentUrl
}

// PaymentForm builds the hidden form fields the gateway expects, including
// the HMAC signature over the fields named by signed_field_names.
func (r EsewaRepository) PaymentForm(transactionUUID string, totalAmount float64) (map[string]string, error) {
	if !r.esewaConfig.EsewaEnabled {
		return nil, ErrGatewayDisabled
	}

	amount := strconv.FormatFloat(totalAmount, 'f', -1, 64)

	return map[string]string{
		"amount":                  amount,
		"tax_amount":              "0",
		"total_amount":            amount,
		"transaction_uuid":        transactionUUID,
		"product_code":            r.esewaConfig.EsewaMerchantCode,
		"product_service_charge":  "0",
		"product_delivery_charge": "0",
		"success_url":             r.esewaConfig.SuccessUrl,
		"failure_url":             r.esewaConfig.FailureUrl,
		"signed_field_names":      "total_amount,transaction_uuid,product_code",
		"signature":               r.sign(amount, transactionUUID),
	}, nil
}

func (r EsewaRepository) sign(totalAmount, transactionUUID string) string {
	message := fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s",
		totalAmount, transactionUUID, r.esewaConfig.EsewaMerchantCode)

	mac := hmac.New(sha256.New, []byte(r.esewaConfig.EsewaSecretKey))
	mac.Write([]byte(message))

	return goshortcute.StringtoBase64Encode(string(mac.Sum(nil)))
}
