package renamed

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename(t *testing.T) {
	t.Run("uploads the document and decodes the suggestion", func(t *testing.T) {
		content := []byte("%PDF-1.4 invoice")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rename", r.URL.Path)
			assert.Equal(t, "Bearer "+testAPIKey, r.Header.Get("Authorization"))

			require.NoError(t, r.ParseMultipartForm(32<<20))
			assert.Equal(t, "{{date}}_{{vendor}}_{{amount}}", r.FormValue("template"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()

			got, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, content, got)
			assert.Equal(t, "scan_001.pdf", header.Filename)
			assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

			respondJSON(t, w, http.StatusOK, map[string]any{
				"originalFilename":  "scan_001.pdf",
				"suggestedFilename": "2024-06-01_acme_492.50.pdf",
				"folderPath":        "invoices/2024",
				"confidence":        0.93,
			})
		}))
		defer srv.Close()

		cli := newTestClient(t, srv.URL)
		defer cli.Close()

		result, err := cli.Rename(context.Background(), FileFromBytes("scan_001.pdf", content), &RenameOptions{
			Template: "{{date}}_{{vendor}}_{{amount}}",
		})
		require.NoError(t, err)
		assert.Equal(t, "scan_001.pdf", result.OriginalFilename)
		assert.Equal(t, "2024-06-01_acme_492.50.pdf", result.SuggestedFilename)
		assert.Equal(t, "invoices/2024", result.FolderPath)
		assert.InDelta(t, 0.93, result.Confidence, 0.0001)
	})

	t.Run("omits the template when unset", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(32<<20))
			_, present := r.MultipartForm.Value["template"]
			assert.False(t, present, "template field should be absent")

			respondJSON(t, w, http.StatusOK, map[string]any{
				"originalFilename":  "scan.pdf",
				"suggestedFilename": "2024-06-01_receipt.pdf",
			})
		}))
		defer srv.Close()

		cli := newTestClient(t, srv.URL)
		defer cli.Close()

		result, err := cli.Rename(context.Background(), FileFromBytes("scan.pdf", []byte("%PDF-1.4")), nil)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01_receipt.pdf", result.SuggestedFilename)
		assert.Empty(t, result.FolderPath)
	})

	t.Run("maps insufficient credits", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, http.StatusPaymentRequired, map[string]string{"error": "Insufficient credits"})
		}))
		defer srv.Close()

		cli := newTestClient(t, srv.URL)
		defer cli.Close()

		_, err := cli.Rename(context.Background(), FileFromBytes("scan.pdf", []byte("%PDF-1.4")), nil)
		require.Error(t, err)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ErrCodeInsufficientCredits, apiErr.Code)
		assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	})

	t.Run("rejects a nil file", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer srv.Close()

		cli := newTestClient(t, srv.URL)
		defer cli.Close()

		_, err := cli.Rename(context.Background(), nil, nil)
		require.ErrorIs(t, err, ErrNilFile)
		assert.Equal(t, 0, requests, "no request should be sent")
	})
}
