package utils

import (
	"io"
	"sync"
)

type flusher interface{ Flush() error }

// FlushingWriter pushes buffered output through after every write so
// reconciliation diagnostics appear as they happen rather than at exit.
type FlushingWriter struct {
	writer io.Writer
	mutex  sync.Mutex
}

// NewFlushingWriter wraps writer so each Write is followed by a Flush when
// the underlying writer offers one. Wrapping an already wrapped writer
// returns it unchanged.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if _, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return writer
	}
	return &FlushingWriter{writer: writer}
}

// Write forwards data to the wrapped writer, then flushes it. Writes are
// serialized so interleaved diagnostics stay whole.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.writer == nil {
		return 0, nil
	}

	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushableWriter, canFlush := flushingWriter.writer.(flusher); canFlush {
		if flushError := flushableWriter.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
