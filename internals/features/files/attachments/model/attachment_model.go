// file: internals/features/files/attachments/model/attachment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Owner type yang didukung lampiran.
const (
	AttachmentOwnerLease    = "lease"
	AttachmentOwnerProperty = "property"
	AttachmentOwnerTenant   = "tenant"
	AttachmentOwnerLandlord = "landlord"
	AttachmentOwnerPayment  = "payment"
	AttachmentOwnerExpense  = "expense"
)

type AttachmentModel struct {
	AttachmentID uuid.UUID `json:"attachment_id" gorm:"column:attachment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AttachmentAgencyID uuid.UUID `json:"attachment_agency_id" gorm:"column:attachment_agency_id;type:uuid;not null;index"`

	AttachmentOwnerType string    `json:"attachment_owner_type" gorm:"column:attachment_owner_type;type:varchar(16);not null;index:idx_attachment_owner"`
	AttachmentOwnerID   uuid.UUID `json:"attachment_owner_id" gorm:"column:attachment_owner_id;type:uuid;not null;index:idx_attachment_owner"`

	AttachmentLabel   *string `json:"attachment_label,omitempty" gorm:"column:attachment_label;type:varchar(120)"`
	AttachmentFileURL string  `json:"attachment_file_url" gorm:"column:attachment_file_url;type:text;not null"`

	// constants.DetectFileTypeFromExt
	AttachmentFileType int   `json:"attachment_file_type" gorm:"column:attachment_file_type;type:smallint;not null;default:99"`
	AttachmentFileSize int64 `json:"attachment_file_size" gorm:"column:attachment_file_size;type:bigint;not null;default:0"`

	AttachmentMeta datatypes.JSON `json:"attachment_meta,omitempty" gorm:"column:attachment_meta;type:jsonb"`

	AttachmentCreatedAt time.Time      `json:"attachment_created_at" gorm:"column:attachment_created_at;type:timestamptz;not null;default:now()"`
	AttachmentDeletedAt gorm.DeletedAt `json:"attachment_deleted_at,omitempty" gorm:"column:attachment_deleted_at;type:timestamptz;index"`
}

func (AttachmentModel) TableName() string { return "attachments" }
