package extraction

import "fmt"

// UnsupportedFormatError is returned for file extensions the extractor does
// not handle. It is not retryable; callers should reject the upload instead.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (supported: .pdf, .doc, .docx, .txt)", e.Extension)
}

// ExtractionFailureError is returned when text extraction fails: the
// conversion tool exited non-zero or timed out, the document could not be
// decoded, or a non-empty document produced empty output. Potentially
// transient; callers may retry once.
type ExtractionFailureError struct {
	Message string
	Cause   error
}

func (e *ExtractionFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionFailureError) Unwrap() error {
	return e.Cause
}
