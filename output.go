package xlog

/*
FileOutput: an append-only log file owned by a Logger.

The file is opened once (parent directories are created when missing) and
every composed line is written with a single Write call. With the default
FLUSH_EACH_WRITE policy the data goes straight to the OS so the last line
before a crash survives; FLUSH_SYNC also fsyncs, FLUSH_BUFFERED batches
writes until Flush or Close.
*/

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sets the flush policy of the file attached by AddFile.
func WithFlushPolicy(p FlushPolicy) FileOption {
	return func(s *fileSettings) {
		s.policy = normPolicy(p)
	}
}

// OpenFileOutput creates the missing parent directories of path and opens the
// file for appending. Existing content is preserved.
func OpenFileOutput(path string, policy FlushPolicy) (*FileOutput, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, DEFAULT_DIR_MODE); err != nil {
			return nil, fmt.Errorf("create log directory %q: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, DEFAULT_FILE_MODE)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	fo := &FileOutput{
		path:   path,
		file:   f,
		policy: normPolicy(policy),
	}
	if fo.policy == FLUSH_BUFFERED {
		fo.bufw = bufio.NewWriterSize(f, DEFAULT_FILE_BUFF)
	}
	return fo, nil
}

// Path returns the path the file was opened with.
func (fo *FileOutput) Path() string { return fo.path }

// Policy returns the flush policy of the file.
func (fo *FileOutput) Policy() FlushPolicy { return fo.policy }

// Write implements io.Writer. The whole payload is written with one call and
// flushed according to the policy.
func (fo *FileOutput) Write(p []byte) (n int, err error) {
	if fo.closed {
		return 0, errors.New(_ERROR_MESSAGE_FILE_CLOSED)
	}
	switch fo.policy {
	case FLUSH_BUFFERED:
		return fo.bufw.Write(p)
	case FLUSH_SYNC:
		if n, err = fo.file.Write(p); err == nil {
			err = fo.file.Sync()
		}
		return n, err
	default:
		return fo.file.Write(p)
	}
}

// Flush pushes buffered data to the file. No-op for unbuffered policies.
func (fo *FileOutput) Flush() error {
	if fo.closed || fo.bufw == nil {
		return nil
	}
	return fo.bufw.Flush()
}

// Close flushes and closes the file. Subsequent calls return nil.
func (fo *FileOutput) Close() error {
	if fo.closed {
		return nil
	}
	ferr := fo.Flush()
	fo.closed = true
	if err := fo.file.Close(); err != nil {
		return err
	}
	return ferr
}
