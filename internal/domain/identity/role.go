package identity

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is issued by the identity service and carried in the access token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevel = map[Role]int{
	RoleCustomer: 1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) AtLeast(min Role) bool {
	have, ok1 := roleLevel[r]
	want, ok2 := roleLevel[min]
	return ok1 && ok2 && have >= want
}

func (r Role) IsStaff() bool {
	return r.AtLeast(RoleOperator)
}
