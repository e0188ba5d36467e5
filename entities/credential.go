package entities

import (
	"Recipe-Share/domain"
	"database/sql/driver"
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past the first 72 bytes.
const maxPasswordBytes = 72

var passwordCost = bcrypt.DefaultCost

// SetPasswordCost changes the bcrypt cost used for new hashes. Call it once
// during startup, before any password is hashed.
func SetPasswordCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	passwordCost = cost
	return nil
}

// Credential holds a salted bcrypt hash. It is written through
// User.SetPassword and checked through User.Authenticate; the hash only
// leaves the process towards the database driver.
type Credential struct {
	hash string
}

func newCredential(plaintext string) (Credential, error) {
	if !utf8.ValidString(plaintext) {
		return Credential{}, domain.ErrPasswordNotUTF8
	}
	if len(plaintext) > maxPasswordBytes {
		return Credential{}, domain.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return Credential{}, &domain.FieldError{Kind: domain.ErrInvalidInput, Field: "password", Msg: err.Error()}
	}
	return Credential{hash: string(hash)}, nil
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// CompareDummyPassword runs a bcrypt comparison at the configured cost that
// never succeeds. Login paths call it when no user matched the username.
func CompareDummyPassword(plaintext string) bool {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no user has this password"), passwordCost)
	})
	if len(plaintext) > maxPasswordBytes {
		plaintext = plaintext[:maxPasswordBytes]
	}
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plaintext))
	return false
}

func (c Credential) matches(plaintext string) bool {
	if c.hash == "" || len(plaintext) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(plaintext)) == nil
}

// IsSet reports whether a password was ever set.
func (c Credential) IsSet() bool {
	return c.hash != ""
}

func (c Credential) Value() (driver.Value, error) {
	if c.hash == "" {
		return nil, nil
	}
	return c.hash, nil
}

func (c *Credential) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.hash = ""
	case string:
		c.hash = v
	case []byte:
		c.hash = string(v)
	default:
		return fmt.Errorf("credential: unsupported source type %T", src)
	}
	return nil
}

func (Credential) GormDataType() string {
	return "string"
}

func (Credential) MarshalJSON() ([]byte, error) {
	return nil, domain.ErrPasswordUnreadable
}

func (Credential) MarshalText() ([]byte, error) {
	return nil, domain.ErrPasswordUnreadable
}

func (Credential) String() string {
	return "[redacted]"
}

func (Credential) GoString() string {
	return "entities.Credential{[redacted]}"
}
