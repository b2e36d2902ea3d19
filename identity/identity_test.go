package identity

import (
	"reflect"
	"testing"
)

func TestRoleSet(t *testing.T) {
	tests := []struct {
		name  string
		roles string
		want  []string
	}{
		{"single", "ROLE_USER", []string{"ROLE_USER"}},
		{"multiple", "ROLE_USER,ROLE_ADMIN", []string{"ROLE_USER", "ROLE_ADMIN"}},
		{"whitespace", " ROLE_USER , ROLE_ADMIN ", []string{"ROLE_USER", "ROLE_ADMIN"}},
		{"duplicates", "ROLE_USER,ROLE_USER,ROLE_ADMIN", []string{"ROLE_USER", "ROLE_ADMIN"}},
		{"blank entries", "ROLE_USER,,ROLE_ADMIN,", []string{"ROLE_USER", "ROLE_ADMIN"}},
		{"empty", "", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := &Identity{Roles: tc.roles}
			if got := id.RoleSet(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("RoleSet() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestJoinRoles(t *testing.T) {
	if got := JoinRoles([]string{"ROLE_USER", "ROLE_ADMIN"}); got != "ROLE_USER,ROLE_ADMIN" {
		t.Errorf("JoinRoles = %q", got)
	}
}
