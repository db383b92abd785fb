package domain

type StaffRole string

const (
	StaffRoleAdmin StaffRole = "Admin"
	StaffRoleStaff StaffRole = "Staff"
)

// StaffAccount is an operator login. Self-registered accounts start as
// unverified Staff and cannot log in until an Admin verifies them.
type StaffAccount struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         StaffRole `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	CreatedOn    string    `json:"created_on"`
}
