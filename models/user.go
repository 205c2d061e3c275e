package models

import "time"

// RootAdminID is the fixed identifier of the master administrator record,
// the one user exempt from deletion.
const RootAdminID = "admin-root"

// User is one roster account. Usernames are stored lowercased and trimmed;
// authentication compares them case-insensitively. The two capability flags
// are independent: either one opens its respective panel.
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Password            string    `json:"-"`
	Name                string    `json:"name"`
	CanAccessProduction bool      `json:"can_access_production"`
	CanAccessAdmin      bool      `json:"can_access_admin"`
	CreatedAt           time.Time `json:"created_at"`
}
