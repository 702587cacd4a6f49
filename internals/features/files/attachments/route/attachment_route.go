// file: internals/features/files/attachments/route/attachment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/files/attachments/controller"
)

func AttachmentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttachmentController(db)

	attachments := api.Group("/attachments")
	attachments.Post("/", ctl.UploadAttachment)
	attachments.Get("/", ctl.ListAttachments)
	attachments.Delete("/:id", ctl.DeleteAttachment)
}
