package entities

import (
	"Recipe-Share/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	if err := SetPasswordCost(bcrypt.MinCost); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func strPtr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	t.Run("with password", func(t *testing.T) {
		u, err := NewUser("chef1", strPtr("s3cret"))
		require.NoError(t, err)
		require.Equal(t, "chef1", u.Username)
		require.True(t, u.PasswordHash.IsSet())
		require.True(t, u.Authenticate("s3cret"))
		require.False(t, u.Authenticate("wrong"))
	})

	t.Run("without password", func(t *testing.T) {
		u, err := NewUser("chef2", nil)
		require.NoError(t, err)
		require.False(t, u.PasswordHash.IsSet())
		require.False(t, u.Authenticate(""))
		require.False(t, u.Authenticate("anything"))
	})

	t.Run("missing username", func(t *testing.T) {
		u, err := NewUser("", strPtr("s3cret"))
		require.Nil(t, u)
		require.ErrorIs(t, err, domain.ErrValidation)
		require.ErrorIs(t, err, domain.ErrUsernameRequired)
	})
}

func TestSetPassword_StoresHashNotPlaintext(t *testing.T) {
	u := &User{Username: "chef1"}
	require.NoError(t, u.SetPassword("s3cret"))

	require.NotEqual(t, "s3cret", u.PasswordHash.hash)
	require.NotContains(t, u.PasswordHash.hash, "s3cret")
	require.True(t, strings.HasPrefix(u.PasswordHash.hash, "$2a$"), "expected a bcrypt hash")
}

func TestSetPassword_UniqueSalts(t *testing.T) {
	a := &User{Username: "a"}
	b := &User{Username: "b"}
	require.NoError(t, a.SetPassword("same-password"))
	require.NoError(t, b.SetPassword("same-password"))

	require.NotEqual(t, a.PasswordHash.hash, b.PasswordHash.hash)
	require.True(t, a.Authenticate("same-password"))
	require.True(t, b.Authenticate("same-password"))
}

func TestAuthenticate_MostRecentPasswordWins(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
		{"max length password", strings.Repeat("a", 72)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Username: "chef"}
			require.NoError(t, u.SetPassword("previous"))
			require.NoError(t, u.SetPassword(tt.password))

			require.True(t, u.Authenticate(tt.password))
			require.False(t, u.Authenticate("previous"))
			require.False(t, u.Authenticate(tt.password+"x"))
		})
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	u := &User{Username: "chef"}
	require.NoError(t, u.SetPassword("correct-password"))

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		"correct-passwor",
		strings.Repeat("x", 10000),
	} {
		require.False(t, u.Authenticate(wrong), "password %q must not authenticate", wrong)
	}
}

func TestAuthenticate_LongerThanBcryptLimit(t *testing.T) {
	u := &User{Username: "chef"}
	base := strings.Repeat("a", 72)
	require.NoError(t, u.SetPassword(base))

	require.True(t, u.Authenticate(base))
	require.False(t, u.Authenticate(base+"b"))
}

func TestSetPassword_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"too long", strings.Repeat("a", 73), domain.ErrPasswordTooLong},
		{"invalid utf-8", "bad\xff\xfe", domain.ErrPasswordNotUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Username: "chef"}
			require.NoError(t, u.SetPassword("kept"))

			err := u.SetPassword(tt.password)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			require.ErrorIs(t, err, tt.want)
			require.True(t, u.Authenticate("kept"), "previous hash must survive a rejected password")
		})
	}
}

func TestCredential_NeverReadable(t *testing.T) {
	tests := []struct {
		name string
		user *User
	}{
		{"password set", func() *User {
			u := &User{Username: "chef"}
			require.NoError(t, u.SetPassword("s3cret"))
			return u
		}()},
		{"password never set", &User{Username: "chef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := json.Marshal(tt.user.PasswordHash)
			require.ErrorIs(t, err, domain.ErrAccess)

			_, err = tt.user.PasswordHash.MarshalText()
			require.ErrorIs(t, err, domain.ErrAccess)

			require.Equal(t, "[redacted]", fmt.Sprint(tt.user.PasswordHash))
			require.NotContains(t, fmt.Sprintf("%#v", tt.user), "$2a$")
		})
	}
}

func TestCredential_ScanValue(t *testing.T) {
	u := &User{Username: "chef"}
	require.NoError(t, u.SetPassword("s3cret"))

	v, err := u.PasswordHash.Value()
	require.NoError(t, err)

	var restored Credential
	require.NoError(t, restored.Scan(v))
	loaded := &User{Username: "chef", PasswordHash: restored}
	require.True(t, loaded.Authenticate("s3cret"))

	require.NoError(t, restored.Scan([]byte(v.(string))))
	require.True(t, restored.matches("s3cret"))

	require.NoError(t, restored.Scan(nil))
	require.False(t, restored.IsSet())

	require.Error(t, restored.Scan(42))

	empty, err := Credential{}.Value()
	require.NoError(t, err)
	require.Nil(t, empty)
}

func TestSetPasswordCost(t *testing.T) {
	require.Error(t, SetPasswordCost(bcrypt.MinCost-1))
	require.Error(t, SetPasswordCost(bcrypt.MaxCost+1))
	require.NoError(t, SetPasswordCost(bcrypt.MinCost))
}

func TestUser_ToResponse(t *testing.T) {
	chef, err := NewUser("chef1", strPtr("s3cret"))
	require.NoError(t, err)
	chef.ID = uuid.New()
	chef.Bio = "soups mostly"

	soup, err := NewRecipe("Soup", strings.Repeat("x", 50), chef)
	require.NoError(t, err)
	chef.Recipes = []Recipe{*soup}

	res := chef.ToResponse()
	require.Equal(t, chef.ID.String(), res.ID)
	require.Equal(t, "chef1", res.Username)
	require.Equal(t, "soups mostly", res.Bio)
	require.Len(t, res.Recipes, 1)
	require.Nil(t, res.Recipes[0].User)
	require.Equal(t, chef.ID.String(), res.Recipes[0].UserID)

	raw, err := json.Marshal(chef)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.NotContains(t, doc, "password_hash")
	require.NotContains(t, doc, "passwordHash")

	recipes, ok := doc["recipes"].([]any)
	require.True(t, ok)
	require.Len(t, recipes, 1)
	entry := recipes[0].(map[string]any)
	require.Equal(t, "Soup", entry["title"])
	require.Equal(t, strings.Repeat("x", 50), entry["instructions"])
	require.NotContains(t, entry, "user")

	require.NotContains(t, string(raw), "$2a$")
}

func TestUser_ToResponse_NoRecipes(t *testing.T) {
	u := &User{Username: "chef"}
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"recipes":[]`)
}

func TestUser_String(t *testing.T) {
	id := uuid.New()
	u := &User{ID: id, Username: "chef1"}
	require.Equal(t, fmt.Sprintf("User chef1, ID %s", id), u.String())
}

func TestCompareDummyPassword_NeverMatches(t *testing.T) {
	for _, p := range []string{"", "s3cret", "no user has this password", strings.Repeat("a", 100)} {
		require.False(t, CompareDummyPassword(p))
	}
}
