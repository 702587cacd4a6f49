// file: internals/features/agency/agencies/model/agency_staff_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AgencyStaffRoleAdmin = "admin"
	AgencyStaffRoleStaff = "staff"
)

// AgencyStaffModel: keanggotaan user di sebuah agency.
// Role "admin" masuk klaim agency_admin_ids, "staff" ke agency_staff_ids.
type AgencyStaffModel struct {
	AgencyStaffID       uuid.UUID `json:"agency_staff_id" gorm:"column:agency_staff_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyStaffAgencyID uuid.UUID `json:"agency_staff_agency_id" gorm:"column:agency_staff_agency_id;type:uuid;not null;index"`
	AgencyStaffUserID   uuid.UUID `json:"agency_staff_user_id" gorm:"column:agency_staff_user_id;type:uuid;not null;index"`

	AgencyStaffRole string `json:"agency_staff_role" gorm:"column:agency_staff_role;type:varchar(12);not null;default:'staff'"`

	AgencyStaffCreatedAt time.Time      `json:"agency_staff_created_at" gorm:"column:agency_staff_created_at;type:timestamptz;not null;default:now()"`
	AgencyStaffDeletedAt gorm.DeletedAt `json:"agency_staff_deleted_at,omitempty" gorm:"column:agency_staff_deleted_at;type:timestamptz;index"`
}

func (AgencyStaffModel) TableName() string { return "agency_staffs" }
