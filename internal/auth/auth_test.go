package auth

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		name               string
		gotUser, gotPass   string
		wantUser, wantPass string
		want               bool
	}{
		{"exact", "admin", "secret", "admin", "secret", true},
		{"wrong password", "admin", "Secret", "admin", "secret", false},
		{"wrong user", "root", "secret", "admin", "secret", false},
		{"both empty presented", "", "", "admin", "secret", false},
		{"swapped", "secret", "admin", "admin", "secret", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Match(tc.gotUser, tc.gotPass, tc.wantUser, tc.wantPass); got != tc.want {
				t.Fatalf("Match() = %v, want %v", got, tc.want)
			}
		})
	}
}
