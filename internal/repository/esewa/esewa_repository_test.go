package esewa

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/pobyzaarif/goshortcute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() EsewaConfig {
	return EsewaConfig{
		EsewaMerchantCode: "EPAYTEST",
		EsewaSecretKey:    "8gBm/:&EnhH.1/q",
		EsewaPaymentUrl:   "https://rc-epay.esewa.com.np/api/epay/main/v2/form",
		SuccessUrl:        "https://shop.test/payment/success",
		FailureUrl:        "https://shop.test/payment/failure",
		EsewaEnabled:      true,
	}
}

func TestPaymentFormFields(t *testing.T) {
	repo := NewEsewaRepository(testConfig())

	form, err := repo.PaymentForm("txn-123", 1000)
	require.NoError(t, err)

	assert.Equal(t, "1000", form["amount"])
	assert.Equal(t, "1000", form["total_amount"])
	assert.Equal(t, "0", form["tax_amount"])
	assert.Equal(t, "txn-123", form["transaction_uuid"])
	assert.Equal(t, "EPAYTEST", form["product_code"])
	assert.Equal(t, "total_amount,transaction_uuid,product_code", form["signed_field_names"])
	assert.Equal(t, "https://shop.test/payment/success", form["success_url"])
	assert.Equal(t, "https://shop.test/payment/failure", form["failure_url"])
}

func TestPaymentFormSignature(t *testing.T) {
	cfg := testConfig()
	repo := NewEsewaRepository(cfg)

	form, err := repo.PaymentForm("txn-123", 550.5)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte(cfg.EsewaSecretKey))
	mac.Write([]byte("total_amount=550.5,transaction_uuid=txn-123,product_code=EPAYTEST"))
	want := goshortcute.StringtoBase64Encode(string(mac.Sum(nil)))

	assert.Equal(t, want, form["signature"])
}

func TestPaymentFormDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.EsewaEnabled = false
	repo := NewEsewaRepository(cfg)

	_, err := repo.PaymentForm("txn-123", 1000)
	assert.ErrorIs(t, err, ErrGatewayDisabled)
	assert.False(t, repo.Enabled())
}
