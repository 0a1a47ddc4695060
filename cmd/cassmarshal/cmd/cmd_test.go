package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pkg        = "org.apache.cassandra.db.marshal."
	utf8Long   = pkg + "CompositeType(" + pkg + "UTF8Type," + pkg + "LongType)"
	schemaYAML = `
column_families:
  messages:
    comparator: ` + utf8Long + `
    validator: ` + pkg + `BytesType
    columns:
      sender: ` + pkg + `UTF8Type
`
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestEncodeDecodeLeaf(t *testing.T) {
	out, err := run(t, "encode", "-t", pkg+"LongType", "42")
	require.NoError(t, err)
	assert.Equal(t, "000000000000002a\n", out)

	out, err = run(t, "decode", "-t", pkg+"Int32Type", "0x0000002a")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	out, err = run(t, "decode", "-t", pkg+"BytesType", "cafe")
	require.NoError(t, err)
	assert.Equal(t, "cafe\n", out)
}

func TestEncodeComposite(t *testing.T) {
	out, err := run(t, "encode", "-t", utf8Long, "ab", "1")
	require.NoError(t, err)
	assert.Equal(t, "0002"+"6162"+"00"+"0008"+"0000000000000001"+"01"+"\n", out)

	out, err = run(t, "encode", "-t", utf8Long, "--slice", "start", "--inclusive", "ab")
	require.NoError(t, err)
	assert.Equal(t, "0002"+"6162"+"ff"+"\n", out)

	out, err = run(t, "encode", "-t", utf8Long, "--slice", "end", "ab")
	require.NoError(t, err)
	assert.Equal(t, "0002"+"6162"+"ff"+"\n", out, "exclusive end matches inclusive start")
}

func TestDecodeComposite(t *testing.T) {
	out, err := run(t, "decode", "-t", utf8Long, "0002"+"6162"+"00"+"0008"+"0000000000000001"+"01")
	require.NoError(t, err)
	assert.Equal(t, "0: ab\n1: 1\n", out)
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", utf8Long)
	require.NoError(t, err)
	assert.Equal(t, "CompositeType(UTF8Type,LongType)\n  0: UTF8Type\n  1: LongType\n", out)

	_, err = run(t, "parse", pkg+"NoSuchType")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "LongType")
	assert.Contains(t, out, "TimeUUIDType")
}

func TestSchemaMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schemaYAML), 0o600))

	out, err := run(t, "encode", "--schema", path, "-f", "messages", "ab", "1")
	require.NoError(t, err)
	assert.Equal(t, "0002"+"6162"+"00"+"0008"+"0000000000000001"+"01"+"\n", out)

	out, err = run(t, "encode", "--schema", path, "-f", "messages", "-c", "sender", "ada")
	require.NoError(t, err)
	assert.Equal(t, "616461\n", out)

	_, err = run(t, "encode", "--schema", path, "ada")
	assert.Error(t, err, "--schema without --family")
}

func TestFlagErrors(t *testing.T) {
	_, err := run(t, "encode", "-t", pkg+"LongType", "--slice", "start", "1")
	assert.Error(t, err)

	_, err = run(t, "encode", "-t", utf8Long, "--slice", "sideways", "a")
	assert.Error(t, err)

	_, err = run(t, "decode", "-t", pkg+"LongType", "zz")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "types")
	assert.Error(t, err)
}
