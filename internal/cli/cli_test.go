package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/payload"
)

const sampleJSON = `{"docType":"jts","version":"1.0","header":{"startTime":"2024-05-01T10:00:00.123456Z","endTime":"2024-05-01T10:01:00.123456Z","recordCount":2,"columns":{"0":{"id":"series_1","name":"Series 1","dataType":"NUMBER"},"1":{"id":"series_2","name":"Series 2","dataType":"NUMBER","units":"C"}}},"data":[{"ts":"2024-05-01T10:00:00.123456Z","f":{"0":{"v":1.23,"q":192,"a":"comment"},"1":{"v":2.22,"q":222,"a":"comment ts2"}}},{"ts":"2024-05-01T10:01:00.123456Z","f":{"0":{"v":2.34,"q":245,"a":"comment number 2"},"1":{"v":1.11,"q":111,"a":"comment ts2 111"}}}]}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "jts", cmd.Use)

	for _, name := range []string{"inspect", "fmt", "pack", "unpack"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	path := writeFile(t, "doc.json", []byte(sampleJSON))

	_, _, err := execute(t, "", "inspect", "--format", "xml", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInspect_Text(t *testing.T) {
	path := writeFile(t, "doc.json", []byte(sampleJSON))

	out, _, err := execute(t, "", "inspect", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Version:  1.0")
	assert.Contains(t, out, "Range:    2024-05-01T10:00:00.123456Z .. 2024-05-01T10:01:00.123456Z")
	assert.Contains(t, out, "Entries:  2")
	assert.Contains(t, out, "series_2")
	assert.NotContains(t, out, "Payload:")
}

func TestInspect_JSONAndYAML(t *testing.T) {
	path := writeFile(t, "doc.json", []byte(sampleJSON))

	out, _, err := execute(t, "", "inspect", "--format", "json", path)
	require.NoError(t, err)

	var fromJSON InspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, 2, fromJSON.RecordCount)
	require.Len(t, fromJSON.Series, 2)
	assert.Equal(t, "C", fromJSON.Series[1].Units)
	assert.Equal(t, "NUMBER", fromJSON.Series[0].DataType)

	out, _, err = execute(t, "", "inspect", "--format", "yaml", path)
	require.NoError(t, err)

	var fromYAML InspectResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)
}

func TestInspect_Stdin(t *testing.T) {
	out, _, err := execute(t, sampleJSON, "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Series:   2")
}

func TestInspect_InvalidDocument(t *testing.T) {
	path := writeFile(t, "doc.json", []byte(`{"docType":"csv","header":{"columns":{}}}`))

	_, _, err := execute(t, "", "inspect", path)
	require.ErrorIs(t, err, errs.ErrInvalidDocType)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, _, err = execute(t, "", "inspect", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFmt(t *testing.T) {
	path := writeFile(t, "doc.json", []byte(sampleJSON))

	out, _, err := execute(t, "", "fmt", "--compact", path)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON+"\n", out)

	out, _, err = execute(t, "", "fmt", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"docType\": \"jts\",\n"))

	dest := filepath.Join(t.TempDir(), "out.json")
	_, _, err = execute(t, "", "fmt", "--indent", "4", "-o", dest, path)
	require.NoError(t, err)
	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(written), "\n    \"version\": \"1.0\"")
}

func TestPackInspectUnpack(t *testing.T) {
	src := writeFile(t, "doc.json", []byte(sampleJSON))
	packed := filepath.Join(t.TempDir(), "doc.jtsp")

	_, stderr, err := execute(t, "", "pack", "-c", "lz4", "--big-endian", "-o", packed, src)
	require.NoError(t, err)
	assert.Contains(t, stderr, "packed document")
	assert.Contains(t, stderr, "compression=lz4")

	data, err := os.ReadFile(packed)
	require.NoError(t, err)
	h, err := payload.ParseHeader(data)
	require.NoError(t, err)
	assert.True(t, h.Flag.IsBigEndian())

	out, _, err := execute(t, "", "inspect", "--format", "json", packed)
	require.NoError(t, err)
	var result InspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotNil(t, result.Payload)
	assert.Equal(t, "LZ4", result.Payload.Compression)
	assert.Equal(t, "big-endian", result.Payload.ByteOrder)
	assert.Equal(t, len(sampleJSON), result.Payload.Size)

	out, _, err = execute(t, "", "unpack", "--raw", packed)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, out)

	out, _, err = execute(t, "", "unpack", packed)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON+"\n", out)
}

func TestPack_Errors(t *testing.T) {
	src := writeFile(t, "doc.json", []byte(sampleJSON))

	_, _, err := execute(t, "", "pack", "-c", "gzip", src)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	empty := writeFile(t, "empty.json", []byte(`{"docType":"jts","version":"1.0","header":{"columns":{}},"data":[]}`))
	_, _, err = execute(t, "", "pack", empty)
	require.ErrorIs(t, err, errs.ErrNoData)
}

func TestUnpack_Errors(t *testing.T) {
	src := writeFile(t, "doc.json", []byte(sampleJSON))

	_, _, err := execute(t, "", "unpack", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a jts payload")

	packed, err := payload.PackBytes([]byte(sampleJSON))
	require.NoError(t, err)
	packed[len(packed)-1] ^= 0xff
	corrupt := writeFile(t, "corrupt.jtsp", packed)

	_, _, err = execute(t, "", "unpack", corrupt)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestVerboseLogging(t *testing.T) {
	path := writeFile(t, "doc.json", []byte(sampleJSON))

	_, stderr, err := execute(t, "", "fmt", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = execute(t, "", "fmt", "-v", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "formatted document")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := WrapExitError(ExitFailure, "invalid document", errs.ErrMalformedInput)
	require.ErrorIs(t, wrapped, errs.ErrMalformedInput)
	assert.Equal(t, "invalid document: "+errs.ErrMalformedInput.Error(), wrapped.Error())
}

func TestInspect_DuplicateIdentifiers(t *testing.T) {
	doc := `{"docType":"jts","version":"1.0","header":{"columns":{"0":{"id":"dup","name":"A","dataType":"NUMBER"},"1":{"id":"dup","name":"B","dataType":"TEXT"}}},` +
		`"data":[{"ts":"2024-05-01T10:00:00Z","f":{"0":{"v":1},"1":{"v":"on"}}}]}`
	path := writeFile(t, "dup.json", []byte(doc))

	out, _, err := execute(t, "", "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Duplicate identifiers: [dup]")
}
