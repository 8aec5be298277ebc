package fixulps

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const test_ulps = "# Begin of automatic generation\n" +
	"\n" +
	"Function: Real part of \"cacos\":\n" +
	"float: 1\n" +
	"double: 2\n" +
	"ldouble: 3\n" +
	"\n" +
	"Function: Imaginary part of \"cacos\":\n" +
	"float: 1\n" +
	"\n" +
	"Function: Real part of \"cacos_downward\":\n" +
	"float: 4\n" +
	"double: 5\n" +
	"\n" +
	"Function: Real part of \"catan\":\n" +
	"float: 6\n" +
	"\n" +
	"# End of automatic generation\n"

const test_ulps_filtered = "# Begin of automatic generation\n" +
	"\n" +
	"Function: Real part of \"cacos\":\n" +
	"double: 2\n" +
	"ldouble: 3\n" +
	"\n" +
	"Function: Imaginary part of \"cacos\":\n" +
	"float: 1\n" +
	"\n" +
	"Function: Real part of \"cacos_downward\":\n" +
	"double: 5\n" +
	"\n" +
	"Function: Real part of \"catan\":\n" +
	"float: 6\n" +
	"\n" +
	"# End of automatic generation\n"

func write_test_file(t *testing.T, name string, content []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, content, 0644))
	return filename
}

func TestFilter_file(t *testing.T) {
	filename := write_test_file(t, "libm-test-ulps-x86_64", []byte(test_ulps))
	require.NoError(t, filter_file(filename, "cacos", "float", "Real"))
	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, test_ulps_filtered, string(got))
}

func TestFilter_file_no_match(t *testing.T) {
	filename := write_test_file(t, "libm-test-ulps-x86_64", []byte(test_ulps))
	require.NoError(t, filter_file(filename, "csqrt", "float", "Real"))
	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, test_ulps, string(got))
}

func TestFilter_file_preserves_line_endings(t *testing.T) {
	content := "Function: Real part of \"cacos\":\r\n" +
		"\r\n" +
		"float: 1\r\n" +
		"double: 2"
	filename := write_test_file(t, "ulps", []byte(content))
	// no match: every byte survives, CRLF and the unterminated last
	// line included
	require.NoError(t, filter_file(filename, "catan", "float", "Real"))
	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestFilter_file_unterminated_last_line(t *testing.T) {
	content := "Function: Real part of \"cacos\":\n" +
		"double: 2\n" +
		"float: 1"
	filename := write_test_file(t, "ulps", []byte(content))
	require.NoError(t, filter_file(filename, "cacos", "float", "Real"))
	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "Function: Real part of \"cacos\":\ndouble: 2\n", string(got))
}

func TestFilter_file_missing(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "no-such-ulps")
	assert.Error(t, filter_file(filename, "cacos", "float", "Real"))
}

func TestFilter_file_gzip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "libm-test-ulps.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(test_ulps))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filename, buf.Bytes(), 0644))

	require.NoError(t, filter_file(filename, "cacos", "float", "Real"))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	assert.Equal(t, test_ulps_filtered, string(got))
}

func TestFilter_file_zstd(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "libm-test-ulps.zst")
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(test_ulps))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filename, buf.Bytes(), 0644))

	require.NoError(t, filter_file(filename, "cacos", "float", "Real"))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	zr, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, test_ulps_filtered, string(got))
}

func TestFilter_lines_empty_input(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, filter_lines(bytes.NewReader(nil), &out, "cacos", "float", "Real"))
	assert.Zero(t, out.Len())
}
