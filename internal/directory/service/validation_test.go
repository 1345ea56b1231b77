package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM \n"))
}

func TestParseLocale(t *testing.T) {
	for _, ok := range []string{"en_GB", "en-AU", "fr", "zh_Hant_TW"} {
		_, err := ParseLocale(ok)
		require.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "not a locale", "en_GB!"} {
		_, err := ParseLocale(bad)
		require.Error(t, err, bad)
	}
}

func TestValidateUserProfile(t *testing.T) {
	valid := UserProfile{
		Email:         "a@example.com",
		GivenName:     "A",
		FamilyName:    "B",
		FullName:      "A B",
		PreferredName: "A",
		Locale:        "en_GB",
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validateStruct(valid))
	})

	t.Run("localhost addresses are allowed", func(t *testing.T) {
		p := valid
		p.Email = "superuser@localhost"
		require.NoError(t, validateStruct(p))
	})

	t.Run("reports json field names", func(t *testing.T) {
		p := valid
		p.Email = "not-an-email"
		p.GivenName = ""
		p.PhoneNumber = "0400 000 000"
		p.Locale = "??"

		err := validateStruct(p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "email")
		require.Contains(t, verr.Fields, "given_name")
		require.Contains(t, verr.Fields, "phone_number")
		require.Contains(t, verr.Fields, "locale")
		require.Equal(t, "is required", verr.Fields["given_name"])
	})

	t.Run("phone must be E.164", func(t *testing.T) {
		p := valid
		p.PhoneNumber = "+61412345678"
		require.NoError(t, validateStruct(p))
	})
}

func TestValidateSlug(t *testing.T) {
	in := GroupInput{Name: "Ops", ShortName: "Ops", Slug: "ops_team-2"}
	require.NoError(t, validateStruct(in))

	in.Slug = "ops team"
	err := validateStruct(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "slug")
}
