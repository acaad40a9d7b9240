package schema

import (
	"bytes"
	"context"
	"github.com/ribgsilva/noteapp/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"

	_ "github.com/proullon/ramsql/driver"
)

func TestSchemaCommands(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "ramsql")
	t.Setenv("DATABASE_CONNECTION_URL", "SchemaCommandTest")
	t.Cleanup(func() {
		if sys.R.Database != nil {
			_ = sys.R.Database.Close()
			sys.R.Database = nil
		}
	})

	run := func(args ...string) (string, error) {
		cmd := Command(zap.NewNop().Sugar())
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs(args)
		err := cmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	out, err := run("create")
	require.NoError(t, err)
	assert.Contains(t, out, "created schema")
	require.NotNil(t, sys.R.Database)

	out, err = run("delete")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted schema")

	_, err = run("delete")
	assert.Error(t, err)
}
