package user

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       Role     `json:"role"`
	Status     string   `json:"status"`
	JoinedDate string   `json:"joinedDate"`
	Addresses  []string `json:"addresses,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) Clone() User {
	if u.Addresses != nil {
		u.Addresses = append([]string(nil), u.Addresses...)
	}
	return u
}
