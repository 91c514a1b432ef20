//go:build integration

package mysql

import (
	"context"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

// setupMySQLContainer starts MySQL with db/schema.sql applied and returns a
// DSN for it.
func setupMySQLContainer(t require.TestingT, ctx context.Context) (string, func()) {
	root, err := os.Getwd()
	require.NoError(t, err)
	schemaPath := filepath.Join(root, "..", "..", "..", "db", "schema.sql")

	container, err := mysql.RunContainer(
		ctx,
		mysql.WithDatabase("brew_console_test"),
		mysql.WithUsername("testuser"),
		mysql.WithPassword("testpass"),
		mysql.WithScripts(schemaPath),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "parseTime=true", "loc=UTC")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return dsn, cleanup
}
