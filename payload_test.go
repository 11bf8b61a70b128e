package renamed

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestEncodeMultipart(t *testing.T) {
	t.Run("round trips the file and fields", func(t *testing.T) {
		payload := &filePayload{
			name:        "invoice.pdf",
			content:     []byte("%PDF-1.4 round trip"),
			contentType: "application/pdf",
		}
		fields := map[string]string{
			"template": "{{date}}_{{vendor}}",
			"mode":     "auto",
		}

		body, contentType, err := encodeMultipart(payload, fields)
		require.NoError(t, err)

		mediaType, params, err := mime.ParseMediaType(contentType)
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		require.NotEmpty(t, params["boundary"])

		form, err := multipart.NewReader(bytes.NewReader(body), params["boundary"]).ReadForm(1 << 20)
		require.NoError(t, err)
		defer form.RemoveAll()

		require.Len(t, form.File["file"], 1)
		header := form.File["file"][0]
		assert.Equal(t, "invoice.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		file, err := header.Open()
		require.NoError(t, err)
		defer file.Close()

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload.content, got)

		require.Len(t, form.Value["template"], 1)
		assert.Equal(t, "{{date}}_{{vendor}}", form.Value["template"][0])
		require.Len(t, form.Value["mode"], 1)
		assert.Equal(t, "auto", form.Value["mode"][0])
	})

	t.Run("writes the file part first", func(t *testing.T) {
		payload := &filePayload{name: "a.pdf", content: []byte("x"), contentType: "application/pdf"}

		body, contentType, err := encodeMultipart(payload, map[string]string{"mode": "pages"})
		require.NoError(t, err)

		_, params, err := mime.ParseMediaType(contentType)
		require.NoError(t, err)

		part, err := multipart.NewReader(bytes.NewReader(body), params["boundary"]).NextPart()
		require.NoError(t, err)
		assert.Equal(t, "file", part.FormName())
	})

	t.Run("escapes quoted filenames", func(t *testing.T) {
		payload := &filePayload{
			name:        `report "final".pdf`,
			content:     []byte("x"),
			contentType: "application/pdf",
		}

		body, contentType, err := encodeMultipart(payload, nil)
		require.NoError(t, err)

		_, params, err := mime.ParseMediaType(contentType)
		require.NoError(t, err)

		form, err := multipart.NewReader(bytes.NewReader(body), params["boundary"]).ReadForm(1 << 20)
		require.NoError(t, err)
		defer form.RemoveAll()

		require.Len(t, form.File["file"], 1)
		assert.Equal(t, `report "final".pdf`, form.File["file"][0].Filename)
	})
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		want     string
	}{
		{"pdf extension", "invoice.pdf", nil, "application/pdf"},
		{"extension match is case-insensitive", "INVOICE.PDF", nil, "application/pdf"},
		{"jpeg extension", "photo.jpeg", nil, "image/jpeg"},
		{"tiff extension", "scan.tif", nil, "image/tiff"},
		{"unknown extension sniffs the content", "scan.img", pngHeader, "image/png"},
		{"plain text falls out of sniffing", "notes.xyz", []byte("plain text here"), "text/plain; charset=utf-8"},
		{"unrecognized bytes fall back to octet-stream", "blob.xyz", []byte{0xDE, 0xAD, 0xBE, 0xEF}, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectContentType(tt.filename, tt.content))
		})
	}
}

func TestFileResolve(t *testing.T) {
	t.Run("from a path", func(t *testing.T) {
		content := []byte("%PDF-1.4 on disk")
		path := filepath.Join(t.TempDir(), "report.pdf")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		payload, err := FileFromPath(path).resolve()
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", payload.name)
		assert.Equal(t, content, payload.content)
		assert.Equal(t, "application/pdf", payload.contentType)
	})

	t.Run("from a missing path", func(t *testing.T) {
		_, err := FileFromPath(filepath.Join(t.TempDir(), "missing.pdf")).resolve()
		require.Error(t, err)
		assert.ErrorContains(t, err, "missing.pdf")
	})

	t.Run("from bytes", func(t *testing.T) {
		payload, err := FileFromBytes("scan.png", pngHeader).resolve()
		require.NoError(t, err)
		assert.Equal(t, "scan.png", payload.name)
		assert.Equal(t, pngHeader, payload.content)
		assert.Equal(t, "image/png", payload.contentType)
	})

	t.Run("from bytes without a name", func(t *testing.T) {
		payload, err := FileFromBytes("", []byte("anonymous")).resolve()
		require.NoError(t, err)
		assert.Equal(t, "file", payload.name)
	})

	t.Run("from a reader", func(t *testing.T) {
		payload, err := FileFromReader("letter.pdf", bytes.NewReader([]byte("%PDF-1.4 streamed"))).resolve()
		require.NoError(t, err)
		assert.Equal(t, "letter.pdf", payload.name)
		assert.Equal(t, []byte("%PDF-1.4 streamed"), payload.content)
		assert.Equal(t, "application/pdf", payload.contentType)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := FileFromReader("stream.pdf", nil).resolve()
		require.ErrorIs(t, err, ErrNilReader)
	})

	t.Run("nil file", func(t *testing.T) {
		var file *File
		_, err := file.resolve()
		require.ErrorIs(t, err, ErrNilFile)
	})
}

func TestFormatByteSize(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KB"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatByteSize(tt.size))
	}
}
