// Package qr renders wallet top-up QR codes. The recharge screen shows a
// UPI deep link the customer scans from any payments app.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// RechargeLink builds the upi://pay deep link for topping up a tag
// wallet. amount zero produces an open-amount link.
func RechargeLink(vpa, payeeName, walletID string, amount float64) (string, error) {
	if strings.TrimSpace(vpa) == "" || !strings.Contains(vpa, "@") {
		return "", fmt.Errorf("invalid VPA %q", vpa)
	}
	if strings.TrimSpace(walletID) == "" {
		return "", fmt.Errorf("wallet id is empty")
	}

	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", payeeName)
	q.Set("tn", "FasTag recharge "+walletID)
	q.Set("cu", "INR")
	if amount > 0 {
		q.Set("am", fmt.Sprintf("%.2f", amount))
	}
	return "upi://pay?" + q.Encode(), nil
}

// RechargePNG renders the recharge link as a 300px PNG.
func RechargePNG(vpa, payeeName, walletID string, amount float64) ([]byte, error) {
	link, err := RechargeLink(vpa, payeeName, walletID, amount)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(link, qrcode.Medium, 300)
}
