package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"already normal", "ana@example.com", "ana@example.com"},
		{"upper domain", "ana@EXAMPLE.COM", "ana@example.com"},
		{"local part kept", "Ana.Souza@Example.Com", "Ana.Souza@example.com"},
		{"surrounding space", "  bob@Mail.org \n", "bob@mail.org"},
		{"last at wins", "we@ird@Host.IO", "we@ird@host.io"},
		{"no at", "  NotAnEmail ", "NotAnEmail"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.email); got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	for _, email := range []string{"", "no-at-sign", "trailing@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true, want false", email)
		}
	}
}
