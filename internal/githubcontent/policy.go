package githubcontent

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	pdfTimestampPolicyNameConstant       = "pdf-timestamp"
	pdfTimestampHunkHeaderConstant       = "@@ -5,8 +5,8 @@"
	pdfRemovedModDateMarkerConstant      = "-/ModDate"
	pdfAddedModDateMarkerConstant        = "+/ModDate"
	pdfRemovedCreationDateMarkerConstant = "-/CreationDate"
	unifiedDiffContextLinesConstant      = 3
)

// SpuriousDiffPolicy decides whether the difference between the current and
// desired contents is semantically empty and may be left unwritten.
type SpuriousDiffPolicy interface {
	Name() string
	OnlySpuriousDifference(currentContent []byte, desiredContent []byte) bool
}

// PDFTimestampPolicy recognizes regenerated PDFs whose only change is the
// modification and creation date metadata embedded at a stable offset.
// Rewriting those files would pollute commit history and burn rate-limit
// budget for no semantic change.
type PDFTimestampPolicy struct{}

// Name identifies the policy in logs.
func (PDFTimestampPolicy) Name() string {
	return pdfTimestampPolicyNameConstant
}

// OnlySpuriousDifference reports true when a unified diff of current against
// desired touches only the /ModDate and /CreationDate lines inside the hunk
// covering lines five through twelve of the document header.
// The added /CreationDate line is intentionally never inspected; the check is
// kept bit-compatible with the behavior observed in production.
func (PDFTimestampPolicy) OnlySpuriousDifference(currentContent []byte, desiredContent []byte) bool {
	unifiedDiff := difflib.UnifiedDiff{
		A:       difflib.SplitLines(string(currentContent)),
		B:       difflib.SplitLines(string(desiredContent)),
		Context: unifiedDiffContextLinesConstant,
	}

	renderedDiff, renderError := difflib.GetUnifiedDiffString(unifiedDiff)
	if renderError != nil {
		return false
	}

	return strings.Contains(renderedDiff, pdfTimestampHunkHeaderConstant) &&
		strings.Contains(renderedDiff, pdfRemovedModDateMarkerConstant) &&
		strings.Contains(renderedDiff, pdfRemovedCreationDateMarkerConstant) &&
		strings.Contains(renderedDiff, pdfAddedModDateMarkerConstant)
}
