package account

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/models"
)

// ValidateAddress checks required fields and column sizes.
func ValidateAddress(a *models.Address) error {
	required := []struct {
		value string
		max   int
		code  string
	}{
		{a.Address, 100, "invalid_address"},
		{a.District, 50, "invalid_district"},
		{a.City, 50, "invalid_city"},
		{a.PostalCode, 50, "invalid_postal_code"},
	}

	for _, f := range required {
		v := strings.TrimSpace(f.value)
		if v == "" || utf8.RuneCountInString(v) > f.max {
			return httperr.Validation(f.code)
		}
	}

	if a.Address2 != nil && utf8.RuneCountInString(*a.Address2) > 100 {
		return httperr.Validation("invalid_address2")
	}
	if a.Phone != nil && utf8.RuneCountInString(*a.Phone) > 15 {
		return httperr.Validation("invalid_phone")
	}

	return nil
}
