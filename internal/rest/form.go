package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
)

// Form is the payload for create and update calls. It encodes as
// multipart form data so attachments (logos, covers, contract files)
// ship in the same request as scalar fields.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key, value string
}

type formFile struct {
	field    string
	filename string
	content  io.Reader
}

func NewForm() *Form {
	return &Form{}
}

// Set appends one scalar field. Repeated keys are allowed; the server
// reads multi-valued fields that way (e.g. organization_ids).
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key, value})
	return f
}

func (f *Form) SetInt(key string, value int) *Form {
	return f.Set(key, strconv.Itoa(value))
}

func (f *Form) SetBool(key string, value bool) *Form {
	return f.Set(key, strconv.FormatBool(value))
}

// Attach adds a file part read from content when the form encodes.
func (f *Form) Attach(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field, filename, content})
	return f
}

type encodedForm struct {
	contentType string
	reader      io.Reader
}

func (f *Form) encode() (*encodedForm, error) {
	if f == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, fmt.Errorf("rest: encode field %q: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, fmt.Errorf("rest: encode file %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, fmt.Errorf("rest: read attachment %q: %w", file.filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &encodedForm{contentType: w.FormDataContentType(), reader: &buf}, nil
}
