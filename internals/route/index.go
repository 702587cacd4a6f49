// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agencyRoute "propertiku_backend/internals/features/agency/agencies/route"
	expenseRoute "propertiku_backend/internals/features/finance/expenses/route"
	paymentRoute "propertiku_backend/internals/features/finance/payments/route"
	attachmentRoute "propertiku_backend/internals/features/files/attachments/route"
	leaseRoute "propertiku_backend/internals/features/lease/leases/route"
	buildingRoute "propertiku_backend/internals/features/property/buildings/route"
	landlordRoute "propertiku_backend/internals/features/property/landlords/route"
	propertyRoute "propertiku_backend/internals/features/property/properties/route"
	tenantRoute "propertiku_backend/internals/features/property/tenants/route"
	authRoute "propertiku_backend/internals/features/users/auth/route"
	userRoute "propertiku_backend/internals/features/users/user/route"
	authMiddleware "propertiku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route aplikasi.
//   - /api publik: auth (login/register/refresh) + webhook Midtrans
//   - /api lainnya: wajib access token (AuthMiddleware)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")
	authRoute.AuthPublicRoutes(public, db)
	paymentRoute.PaymentWebhookRoutes(public, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up PROTECTED routes...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(api, db)
	userRoute.UserRoutes(api, db)
	agencyRoute.AgencyRoutes(api, db)

	buildingRoute.BuildingRoutes(api, db)
	propertyRoute.PropertyRoutes(api, db)
	tenantRoute.TenantRoutes(api, db)
	landlordRoute.LandlordRoutes(api, db)

	leaseRoute.LeaseRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	expenseRoute.ExpenseRoutes(api, db)
	attachmentRoute.AttachmentRoutes(api, db)

	log.Println("[INFO] Semua route terpasang")
}
