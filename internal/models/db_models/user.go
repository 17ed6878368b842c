package db_models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleOfficer UserRole = "officer"
)

type DutyStatus string

const (
	DutyAvailable DutyStatus = "available"
	DutyOnDuty    DutyStatus = "on-duty"
	DutyActive    DutyStatus = "active"
	DutyOffDuty   DutyStatus = "off-duty"
)

type User struct {
	BaseModel
	Name         string     `json:"name"`
	Email        string     `gorm:"unique" json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `gorm:"default:officer" json:"role"`
	BadgeNumber  string     `json:"badge_number"`
	Status       DutyStatus `gorm:"default:available" json:"status"`
}
