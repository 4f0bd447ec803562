package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin       = "admin"
	RoleDataOfficer = "data_officer"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// policies is the static permission matrix. Roles are fixed for this system:
// administrators manage everything, data officers maintain employee records
// and registrations but cannot record transfers or manage users.
var policies = [][]string{
	{RoleAdmin, "*", "*"},

	{RoleDataOfficer, "employee", "read"},
	{RoleDataOfficer, "employee", "create"},
	{RoleDataOfficer, "employee", "update"},
	{RoleDataOfficer, "designation", "read"},
	{RoleDataOfficer, "registration", "read"},
	{RoleDataOfficer, "registration", "create"},
	{RoleDataOfficer, "registration", "update"},
	{RoleDataOfficer, "transfer", "read"},
	{RoleDataOfficer, "report", "read"},
	{RoleDataOfficer, "export", "read"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
