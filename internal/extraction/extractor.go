// Package extraction converts résumé documents (PDF, DOC, DOCX, TXT) into
// plain text. PDF and DOCX are decoded in-process; legacy DOC is converted
// through an external antiword invocation under a bounded timeout.
package extraction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DefaultTimeout bounds the external conversion subprocess.
const DefaultTimeout = 10 * time.Second

// Extractor converts document bytes to plain UTF-8 text. The zero value is
// not usable; construct with New.
type Extractor struct {
	timeout time.Duration
}

// New returns an Extractor with the default subprocess timeout.
func New() *Extractor {
	return &Extractor{timeout: DefaultTimeout}
}

// NewWithTimeout returns an Extractor with a custom subprocess timeout.
func NewWithTimeout(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{timeout: timeout}
}

// ExtractFile reads a document from disk and extracts its text. The format
// is taken from the file extension.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionFailureError{
			Message: fmt.Sprintf("failed to read document %s", path),
			Cause:   err,
		}
	}
	return e.ExtractBytes(ctx, data, filepath.Ext(path))
}

// ExtractBytes extracts plain text from document bytes. ext is the declared
// file extension, with or without the leading dot. Returns
// *UnsupportedFormatError for unknown extensions and
// *ExtractionFailureError when conversion fails or a non-empty document
// yields empty text.
func (e *Extractor) ExtractBytes(ctx context.Context, data []byte, ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))

	var (
		text string
		err  error
	)
	switch ext {
	case "txt":
		text = string(data)
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDOCX(data)
	case "doc":
		text, err = e.extractDOC(ctx, data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
	if err != nil {
		return "", err
	}

	if len(data) > 0 && strings.TrimSpace(text) == "" {
		return "", &ExtractionFailureError{
			Message: fmt.Sprintf("%s conversion produced no text for a non-empty document", ext),
		}
	}

	return text, nil
}

// extractPDF decodes PDF bytes page by page.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionFailureError{
			Message: "failed to read PDF document",
			Cause:   err,
		}
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

// extractDOCX decodes DOCX bytes in memory.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionFailureError{
			Message: "failed to parse DOCX document",
			Cause:   err,
		}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// extractDOC converts a legacy DOC document by invoking antiword on a
// temporary file. The subprocess runs under the extractor timeout and is
// killed on expiry.
func (e *Extractor) extractDOC(ctx context.Context, data []byte) (string, error) {
	if _, err := exec.LookPath("antiword"); err != nil {
		return "", &ExtractionFailureError{
			Message: "antiword not found in PATH; install it to process legacy .doc documents",
			Cause:   err,
		}
	}

	tmpFile, err := os.CreateTemp("", "resume-*.doc")
	if err != nil {
		return "", &ExtractionFailureError{
			Message: "failed to create temporary file for DOC conversion",
			Cause:   err,
		}
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return "", &ExtractionFailureError{
			Message: "failed to write temporary file for DOC conversion",
			Cause:   err,
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", &ExtractionFailureError{
			Message: "failed to close temporary file for DOC conversion",
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// -w 0: no line wrapping, keep the document's own line breaks
	cmd := exec.CommandContext(ctx, "antiword", "-w", "0", tmpPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &ExtractionFailureError{
			Message: fmt.Sprintf("DOC conversion timed out after %s", e.timeout),
			Cause:   ctx.Err(),
		}
	}
	if runErr != nil {
		return "", &ExtractionFailureError{
			Message: fmt.Sprintf("antiword failed: %s", strings.TrimSpace(stderr.String())),
			Cause:   runErr,
		}
	}

	return stdout.String(), nil
}
