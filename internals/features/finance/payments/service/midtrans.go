// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"propertiku_backend/internals/configs"
	"propertiku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Snap Client
   ========================================================= */

var SnapClient snap.Client

// InitMidtrans dipanggil sekali saat bootstrap app.
// MIDTRANS_ENV=production → Production, selain itu Sandbox.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV"), "production") {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

/* =========================================================
   Snap Token
   ========================================================= */

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

// GenerateSnapToken membuat transaksi Snap untuk satu payment.
// PaymentOrderID wajib sudah terisi (dipakai sebagai OrderID Midtrans).
func GenerateSnapToken(p model.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("payment_amount harus > 0")
	}
	if p.PaymentOrderID == nil || *p.PaymentOrderID == "" {
		return "", "", errors.New("payment_order_id wajib diisi (dipakai sebagai OrderID)")
	}

	itemName := "Tagihan sewa"
	if p.PaymentNotes != nil && *p.PaymentNotes != "" {
		itemName = truncate(*p.PaymentNotes, 50)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *p.PaymentOrderID,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       *p.PaymentOrderID,
				Price:    int64(p.PaymentAmount),
				Qty:      1,
				Name:     itemName,
				Category: string(p.PaymentKind),
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
