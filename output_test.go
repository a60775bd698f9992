package xlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OpenFileOutput(t *testing.T) {
	t.Run("creates_parent_dirs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "x", "y", "z.log")
		fo, err := OpenFileOutput(path, FLUSH_EACH_WRITE)
		require.NoError(t, err)
		defer fo.Close()
		assert.DirExists(t, filepath.Dir(path))
		assert.FileExists(t, path)
		assert.Equal(t, path, fo.Path())
		assert.Equal(t, FLUSH_EACH_WRITE, fo.Policy())
	})
	t.Run("relative_path", func(t *testing.T) {
		t.Chdir(t.TempDir())
		fo, err := OpenFileOutput("plain.log", FLUSH_EACH_WRITE)
		require.NoError(t, err)
		require.NoError(t, fo.Close())
		assert.FileExists(t, "plain.log")
	})
	t.Run("appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "append.log")
		require.NoError(t, os.WriteFile(path, []byte("before restart\n"), 0644))
		fo, err := OpenFileOutput(path, FLUSH_EACH_WRITE)
		require.NoError(t, err)
		_, err = fo.Write([]byte("after restart\n"))
		require.NoError(t, err)
		require.NoError(t, fo.Close())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "before restart\nafter restart\n", string(data))
	})
	t.Run("bad_policy_is_default", func(t *testing.T) {
		fo, err := OpenFileOutput(filepath.Join(t.TempDir(), "p.log"), FlushPolicy(100))
		require.NoError(t, err)
		defer fo.Close()
		assert.Equal(t, FLUSH_EACH_WRITE, fo.Policy())
		assert.Nil(t, fo.bufw)
	})
	t.Run("directory_as_file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := OpenFileOutput(dir, FLUSH_EACH_WRITE)
		assert.ErrorContains(t, err, "open log file")
	})
}

func Test_FileOutput_Policies(t *testing.T) {
	tests := []struct {
		name       string
		policy     FlushPolicy
		visibleNow bool // data is in the file right after Write
	}{
		{"each_write", FLUSH_EACH_WRITE, true},
		{"sync", FLUSH_SYNC, true},
		{"buffered", FLUSH_BUFFERED, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name+".log")
			fo, err := OpenFileOutput(path, tt.policy)
			require.NoError(t, err)
			n, err := fo.Write([]byte(testlogstr + "\n"))
			require.NoError(t, err)
			assert.Equal(t, len(testlogstr)+1, n)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.visibleNow {
				assert.Equal(t, testlogstr+"\n", string(data))
			} else {
				assert.Empty(t, data)
			}
			require.NoError(t, fo.Flush())
			data, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, testlogstr+"\n", string(data))
			require.NoError(t, fo.Close())
		})
	}
}

func Test_FileOutput_Close(t *testing.T) {
	fo, err := OpenFileOutput(filepath.Join(t.TempDir(), "c.log"), FLUSH_BUFFERED)
	require.NoError(t, err)
	assert.NoError(t, fo.Close())
	assert.NoError(t, fo.Close(), "second close is a no-op")
	assert.NoError(t, fo.Flush())
	n, err := fo.Write([]byte("late"))
	assert.Zero(t, n)
	assert.EqualError(t, err, _ERROR_MESSAGE_FILE_CLOSED)
}
