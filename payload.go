package renamed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// defaultFilename is used when an in-memory upload has no name.
const defaultFilename = "file"

// mimeTypes maps the supported document extensions to their content types.
// Anything else falls through to content sniffing.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
}

// File describes one upload source: a path on disk, a reader, or raw bytes.
// The zero value is not usable; build one with the FileFrom constructors.
type File struct {
	name    string
	path    string
	reader  io.Reader
	content []byte
	err     error
}

// FileFromPath uploads the file at path, named by its base name.
func FileFromPath(path string) *File {
	return &File{path: path}
}

// FileFromBytes uploads in-memory content under the given name.
func FileFromBytes(name string, content []byte) *File {
	return &File{name: name, content: content}
}

// FileFromReader uploads everything the reader yields under the given name.
// The reader is drained once, when the operation runs. A nil reader
// surfaces ErrNilReader at that point.
func FileFromReader(name string, r io.Reader) *File {
	if r == nil {
		return &File{err: ErrNilReader}
	}
	return &File{name: name, reader: r}
}

// filePayload is a fully materialized upload: name, bytes, content type.
type filePayload struct {
	name        string
	content     []byte
	contentType string
}

// resolve materializes the file content and infers its content type.
func (f *File) resolve() (*filePayload, error) {
	if f == nil {
		return nil, ErrNilFile
	}
	if f.err != nil {
		return nil, f.err
	}

	switch {
	case f.path != "":
		content, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", f.path, err)
		}
		name := f.name
		if name == "" {
			name = filepath.Base(f.path)
		}
		return &filePayload{name: name, content: content, contentType: detectContentType(name, content)}, nil

	case f.reader != nil:
		content, err := io.ReadAll(f.reader)
		if err != nil {
			return nil, fmt.Errorf("read upload content: %w", err)
		}
		name := f.name
		if name == "" {
			name = defaultFilename
		}
		return &filePayload{name: name, content: content, contentType: detectContentType(name, content)}, nil

	default:
		name := f.name
		if name == "" {
			name = defaultFilename
		}
		return &filePayload{name: name, content: f.content, contentType: detectContentType(name, f.content)}, nil
	}
}

// detectContentType prefers the known document extensions, then sniffs the
// content.
func detectContentType(filename string, content []byte) string {
	if contentType, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return contentType
	}
	return mimetype.Detect(content).String()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart assembles the upload body into memory so the request can
// be replayed on retry. Returns the body and its content type, boundary
// included.
func encodeMultipart(payload *filePayload, fields map[string]string) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadFieldName, quoteEscaper.Replace(payload.name)))
	header.Set("Content-Type", payload.contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(payload.content); err != nil {
		return nil, "", fmt.Errorf("write file part: %w", err)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// uploadFile posts a file plus auxiliary fields to an API endpoint and
// decodes the JSON response into result.
func (c *client) uploadFile(ctx context.Context, path string, file *File, fields map[string]string, result any) error {
	payload, err := file.resolve()
	if err != nil {
		return err
	}

	if c.logger != nil {
		c.logger.Debug("uploading file", "file", payload.name, "size", formatByteSize(len(payload.content)))
	}

	body, contentType, err := encodeMultipart(payload, fields)
	if err != nil {
		return err
	}

	req := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	_, err = c.execute(req, http.MethodPost, path)
	return err
}

// formatByteSize renders a byte count as B, KB, or MB for log lines.
func formatByteSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
