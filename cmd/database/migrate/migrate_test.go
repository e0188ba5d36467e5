package migration_test

import (
	"Recipe-Share/entities"
	"Recipe-Share/internal/testutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db := testutil.NewDB(t)

	m := db.Migrator()
	require.True(t, m.HasTable(&entities.User{}))
	require.True(t, m.HasTable(&entities.Recipe{}))
	require.True(t, m.HasColumn(&entities.User{}, "password_hash"))
	require.True(t, m.HasColumn(&entities.Recipe{}, "minutes_to_complete"))
	require.True(t, m.HasColumn(&entities.Recipe{}, "user_id"))
	require.False(t, m.HasColumn(&entities.User{}, "recipes"))
}
