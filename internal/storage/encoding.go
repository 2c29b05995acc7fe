package storage

import "bytes"

// LineEnding is the line terminator style of a file.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"
)

// String returns the terminator bytes.
func (e LineEnding) String() string {
	if e == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// DetectLineEnding returns the dominant line ending in content.
// Content without any newline is LF.
func DetectLineEnding(content []byte) LineEnding {
	var lf, crlf int
	for i, b := range content {
		if b != '\n' {
			continue
		}
		if i > 0 && content[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	if crlf > lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// StripBOM removes a UTF-8 byte order mark. It reports whether one was
// present.
func StripBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bomUTF8) {
		return content[len(bomUTF8):], true
	}
	return content, false
}
