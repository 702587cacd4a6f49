// file: internals/features/finance/expenses/route/expense_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/finance/expenses/controller"
)

func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewExpenseController(db)

	expenses := api.Group("/expenses")
	expenses.Post("/", ctl.CreateExpense)
	expenses.Get("/", ctl.GetAllExpenses)
	expenses.Get("/:id", ctl.GetExpenseByID)
	expenses.Patch("/:id/status", ctl.UpdateExpenseStatus)
	expenses.Delete("/:id", ctl.DeleteExpense)
}
