package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBACService_Enforce(t *testing.T) {
	service, err := NewService()
	require.NoError(t, err)

	t.Run("admin is allowed everything", func(t *testing.T) {
		for _, resource := range []string{"employee", "transfer", "report", "export", "user"} {
			for _, action := range []string{"create", "read", "update", "delete"} {
				allowed, err := service.Enforce(RoleAdmin, resource, action)
				assert.NoError(t, err)
				assert.True(t, allowed, "%s %s", resource, action)
			}
		}
	})

	t.Run("data officer maintains records", func(t *testing.T) {
		cases := []struct {
			resource string
			action   string
			want     bool
		}{
			{"employee", "create", true},
			{"employee", "update", true},
			{"employee", "read", true},
			{"registration", "create", true},
			{"registration", "update", true},
			{"transfer", "read", true},
			{"report", "read", true},
			{"export", "read", true},

			{"transfer", "create", false},
			{"employee", "delete", false},
			{"user", "create", false},
			{"user", "read", false},
		}

		for _, tc := range cases {
			allowed, err := service.Enforce(RoleDataOfficer, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed, "%s %s", tc.resource, tc.action)
		}
	})

	t.Run("unknown role is denied", func(t *testing.T) {
		allowed, err := service.Enforce("intern", "employee", "read")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
