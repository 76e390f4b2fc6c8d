package githubcontent_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpinfra/cio/internal/githubcontent"
)

func TestTrimHorizontalWhitespace(testInstance *testing.T) {
	testCases := []struct {
		name           string
		input          []byte
		expectedOutput []byte
	}{
		{
			name:           "EmptyBuffer",
			input:          []byte{},
			expectedOutput: []byte{},
		},
		{
			name:           "AllWhitespaceBuffer",
			input:          []byte("   "),
			expectedOutput: []byte{},
		},
		{
			name:           "TabsAndSpacesStripped",
			input:          []byte(" \t hi \t "),
			expectedOutput: []byte("hi"),
		},
		{
			name:           "NewlinesPreserved",
			input:          []byte("\n\nhi\n\n"),
			expectedOutput: []byte("\n\nhi\n\n"),
		},
		{
			name:           "CarriageReturnsPreserved",
			input:          []byte("\r\nreport\r\n"),
			expectedOutput: []byte("\r\nreport\r\n"),
		},
		{
			name:           "InteriorWhitespaceKept",
			input:          []byte("  alpha \t beta  "),
			expectedOutput: []byte("alpha \t beta"),
		},
		{
			name:           "TrailingSpacesAfterNewlineStripped",
			input:          []byte("hello\n   "),
			expectedOutput: []byte("hello\n"),
		},
		{
			name:           "BinaryBytesUntouched",
			input:          []byte{0x20, 0x00, 0x01, 0x09, 0x02, 0x20},
			expectedOutput: []byte{0x00, 0x01, 0x09, 0x02},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			trimmedOutput := githubcontent.TrimHorizontalWhitespace(testCase.input)
			require.Equal(subtestInstance, testCase.expectedOutput, trimmedOutput)
		})
	}
}

func TestTrimHorizontalWhitespaceIsIdempotent(testInstance *testing.T) {
	inputs := [][]byte{
		[]byte("  value  "),
		[]byte("\tvalue\t"),
		[]byte("\nvalue\n"),
		[]byte(""),
		[]byte("   "),
	}

	for _, input := range inputs {
		trimmedOnce := githubcontent.TrimHorizontalWhitespace(input)
		trimmedTwice := githubcontent.TrimHorizontalWhitespace(trimmedOnce)
		require.Equal(testInstance, trimmedOnce, trimmedTwice)
	}
}

func TestTrimHorizontalWhitespaceReturnsFreshBuffer(testInstance *testing.T) {
	input := []byte(" shared ")
	trimmedOutput := githubcontent.TrimHorizontalWhitespace(input)

	trimmedOutput[0] = 'X'
	require.Equal(testInstance, []byte(" shared "), input)
}
