package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

const (
	DefaultFileField = "file"
	ImageJPEG        = "image/jpeg"
)

// FormFile is the binary part of a multipart submission.
type FormFile struct {
	Field       string
	FileName    string
	ContentType string
	Content     io.Reader
}

// Field is a plain-text part appended next to the file.
type Field struct {
	Name  string
	Value string
}

// Multipart sends a multipart/form-data body. The content type replaces the
// JSON default for this call only.
func (c *Client) Multipart(ctx context.Context, method, path string, file FormFile, fields []Field) (*Response, error) {
	body, contentType, err := encodeMultipart(file, fields)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s form: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	return c.send(req, http.Header{"Content-Type": {contentType}})
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(file FormFile, fields []Field) (*bytes.Buffer, string, error) {
	if file.Content == nil {
		return nil, "", fmt.Errorf("file content is required")
	}
	if file.Field == "" {
		file.Field = DefaultFileField
	}
	if file.ContentType == "" {
		file.ContentType = ImageJPEG
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(file.Field), quoteEscaper.Replace(file.FileName)))
	header.Set("Content-Type", file.ContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", fmt.Errorf("copy file content: %w", err)
	}

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
