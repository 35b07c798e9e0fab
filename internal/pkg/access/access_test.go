package access

import (
	"testing"

	"github.com/florarium/core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	owner := "user-1"

	tests := []struct {
		name string
		ctx  Context
		own  Ownership
		want bool
	}{
		{
			name: "owner may modify",
			ctx:  Context{UserID: "user-1", Role: models.RoleCultivator},
			own:  Ownership{OwnerID: &owner},
			want: true,
		},
		{
			name: "admin may modify anything",
			ctx:  Context{UserID: "admin-1", Role: models.RoleAdmin},
			own:  Ownership{OwnerID: &owner},
			want: true,
		},
		{
			name: "stranger may not",
			ctx:  Context{UserID: "user-2", Role: models.RoleCultivator},
			own:  Ownership{OwnerID: &owner},
			want: false,
		},
		{
			name: "anonymized owner answers to admins only",
			ctx:  Context{UserID: "user-1", Role: models.RoleCultivator},
			own:  Ownership{OwnerID: nil},
			want: false,
		},
		{
			name: "admin may modify anonymized content",
			ctx:  Context{UserID: "admin-1", Role: models.RoleAdmin},
			own:  Ownership{OwnerID: nil},
			want: true,
		},
		{
			name: "no identity never matches",
			ctx:  Context{UserID: "", Role: models.RoleCultivator},
			own:  Ownership{OwnerID: new(string)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.ctx, tt.own))
		})
	}
}
