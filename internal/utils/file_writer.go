package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	wroteFileMessageTemplateConstant       = "wrote file: %s\n"
	fileWriterMkdirErrorTemplateConstant   = "unable to create directory %s: %w"
	fileWriterWriteErrorTemplateConstant   = "unable to write file %s: %w"
	fileWriterDirectoryPermissionsConstant = 0o755
	fileWriterFilePermissionsConstant      = 0o644
)

// FileWriter persists file contents, creating parent directories on demand.
type FileWriter struct {
	reporter Reporter
}

// NewFileWriter constructs a FileWriter reporting through the provided Reporter.
func NewFileWriter(reporter Reporter) *FileWriter {
	if reporter == nil {
		reporter = NewWriterReporter(os.Stdout)
	}
	return &FileWriter{reporter: reporter}
}

// WriteFile creates every missing parent directory of filePath, writes the
// contents, and reports the written path.
func (writer *FileWriter) WriteFile(filePath string, contents []byte) error {
	parentDirectory := filepath.Dir(filePath)
	if mkdirError := os.MkdirAll(parentDirectory, fileWriterDirectoryPermissionsConstant); mkdirError != nil {
		return fmt.Errorf(fileWriterMkdirErrorTemplateConstant, parentDirectory, mkdirError)
	}

	if writeError := os.WriteFile(filePath, contents, fileWriterFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(fileWriterWriteErrorTemplateConstant, filePath, writeError)
	}

	writer.reporter.Printf(wroteFileMessageTemplateConstant, filePath)
	return nil
}
