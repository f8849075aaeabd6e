package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form assembles a multipart/form-data request body. It buffers everything
// up front so the transport can re-send identical bytes on retry.
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewForm returns an empty form.
func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	if f.err != nil {
		return f
	}
	f.err = f.writer.WriteField(name, value)
	return f
}

// AddFile appends a file part read fully from r.
func (f *Form) AddFile(field, filename string, r io.Reader) *Form {
	if f.err != nil {
		return f
	}
	part, err := f.writer.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	if _, err := io.Copy(part, r); err != nil {
		f.err = err
	}
	return f
}

// Encode finalizes the form and returns the body and its content type.
func (f *Form) Encode() ([]byte, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("build multipart form: %w", f.err)
	}
	if err := f.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("build multipart form: %w", err)
	}
	return f.buf.Bytes(), f.writer.FormDataContentType(), nil
}
