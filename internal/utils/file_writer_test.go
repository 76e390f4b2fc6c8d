package utils_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpinfra/cio/internal/utils"
)

const (
	testWrittenFileNameConstant         = "nested/deeper/report.txt"
	testWrittenFileContentsConstant     = "generated report contents\n"
	testWroteFileMessageTemplateCopy    = "wrote file: %s\n"
	testDefaultDateExpectedYearConstant = 1970
)

func TestFileWriterWriteFileCreatesParentDirectories(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	targetPath := filepath.Join(temporaryDirectory, testWrittenFileNameConstant)

	var reporterBuffer bytes.Buffer
	fileWriter := utils.NewFileWriter(utils.NewWriterReporter(&reporterBuffer))

	writeError := fileWriter.WriteFile(targetPath, []byte(testWrittenFileContentsConstant))
	require.NoError(testInstance, writeError)

	writtenContents, readError := os.ReadFile(targetPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testWrittenFileContentsConstant, string(writtenContents))
	require.Equal(testInstance, fmt.Sprintf(testWroteFileMessageTemplateCopy, targetPath), reporterBuffer.String())
}

func TestFileWriterWriteFileReportsWriteFailures(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()

	var reporterBuffer bytes.Buffer
	fileWriter := utils.NewFileWriter(utils.NewWriterReporter(&reporterBuffer))

	writeError := fileWriter.WriteFile(temporaryDirectory, []byte(testWrittenFileContentsConstant))
	require.Error(testInstance, writeError)
	require.Empty(testInstance, reporterBuffer.String())
}

func TestDefaultDate(testInstance *testing.T) {
	defaultDate := utils.DefaultDate()
	require.Equal(testInstance, testDefaultDateExpectedYearConstant, defaultDate.Year())
	require.Equal(testInstance, 1, int(defaultDate.Month()))
	require.Equal(testInstance, 1, defaultDate.Day())
}
