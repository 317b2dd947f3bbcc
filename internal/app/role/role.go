package role

type Role int

const (
	Staff Role = iota // reads orders
	Admin             // also manages staff accounts
)

func (r Role) String() string {
	switch r {
	case Staff:
		return "staff"
	case Admin:
		return "admin"
	}
	return "unknown"
}

func (r Role) Valid() bool {
	return r == Staff || r == Admin
}
