// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/finance/payments/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Post("/", ctl.CreatePayment)
	payments.Get("/", ctl.GetAllPayments)
	payments.Get("/:id", ctl.GetPaymentByID)
	payments.Patch("/:id/status", ctl.UpdatePaymentStatus)
	payments.Delete("/:id", ctl.DeletePayment)

	payments.Post("/:id/checkout", ctl.Checkout)
}

// PaymentWebhookRoutes: endpoint publik untuk notifikasi Midtrans.
// Path ini di-skip oleh auth middleware.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)
	api.Post("/payments/notification", ctl.HandleNotification)
}
