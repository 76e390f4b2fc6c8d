package githubcontent

const (
	horizontalTabByteConstant = byte(0x09)
	spaceByteConstant         = byte(0x20)
)

// TrimHorizontalWhitespace returns a new buffer with leading and trailing tab
// and space bytes removed. Newlines, carriage returns, and other control
// bytes are preserved so binary artifacts survive the comparison unchanged.
func TrimHorizontalWhitespace(buffer []byte) []byte {
	start := 0
	for start < len(buffer) && isHorizontalWhitespace(buffer[start]) {
		start++
	}

	end := len(buffer)
	for end > start && isHorizontalWhitespace(buffer[end-1]) {
		end--
	}

	trimmed := make([]byte, end-start)
	copy(trimmed, buffer[start:end])
	return trimmed
}

func isHorizontalWhitespace(candidate byte) bool {
	return candidate == horizontalTabByteConstant || candidate == spaceByteConstant
}
