package githubcontent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpinfra/cio/internal/githubcontent"
)

func buildPDFDocument(modificationDate string, creationDate string, title string) []byte {
	documentLines := []string{
		"%PDF-1.4",
		"1 0 obj",
		"<<",
		"/Title (" + title + ")",
		"/Producer (pdfTeX-1.40.21)",
		"/Creator (TeX)",
		"/Author (Operations)",
		"/ModDate (" + modificationDate + ")",
		"/CreationDate (" + creationDate + ")",
		">>",
		"endobj",
		"2 0 obj",
		"endobj",
	}
	return []byte(strings.Join(documentLines, "\n") + "\n")
}

func TestPDFTimestampPolicyRecognizesTimestampChurn(testInstance *testing.T) {
	policy := githubcontent.PDFTimestampPolicy{}

	currentDocument := buildPDFDocument("D:20200101000000Z", "D:20200101000000Z", "Quarterly Report")
	regeneratedDocument := buildPDFDocument("D:20210615120000Z", "D:20210615120000Z", "Quarterly Report")

	require.True(testInstance, policy.OnlySpuriousDifference(currentDocument, regeneratedDocument))
}

func TestPDFTimestampPolicyRejectsOtherChanges(testInstance *testing.T) {
	policy := githubcontent.PDFTimestampPolicy{}

	testCases := []struct {
		name            string
		currentDocument []byte
		desiredDocument []byte
	}{
		{
			name:            "IdenticalDocuments",
			currentDocument: buildPDFDocument("D:20200101000000Z", "D:20200101000000Z", "Quarterly Report"),
			desiredDocument: buildPDFDocument("D:20200101000000Z", "D:20200101000000Z", "Quarterly Report"),
		},
		{
			name:            "TitleChangedAlongsideTimestamps",
			currentDocument: buildPDFDocument("D:20200101000000Z", "D:20200101000000Z", "Quarterly Report"),
			desiredDocument: buildPDFDocument("D:20210615120000Z", "D:20210615120000Z", "Annual Report"),
		},
		{
			name:            "UnrelatedTextFiles",
			currentDocument: []byte("hello\n"),
			desiredDocument: []byte("goodbye\n"),
		},
		{
			name: "TimestampsAtDifferentOffset",
			currentDocument: []byte(strings.Join([]string{
				"%PDF-1.4",
				"/ModDate (D:20200101000000Z)",
				"/CreationDate (D:20200101000000Z)",
				"endobj",
			}, "\n") + "\n"),
			desiredDocument: []byte(strings.Join([]string{
				"%PDF-1.4",
				"/ModDate (D:20210615120000Z)",
				"/CreationDate (D:20210615120000Z)",
				"endobj",
			}, "\n") + "\n"),
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			require.False(subtestInstance, policy.OnlySpuriousDifference(testCase.currentDocument, testCase.desiredDocument))
		})
	}
}

func TestPDFTimestampPolicyName(testInstance *testing.T) {
	require.Equal(testInstance, "pdf-timestamp", githubcontent.PDFTimestampPolicy{}.Name())
}
