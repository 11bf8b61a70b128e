package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-sdk"
)

// supportedExtensions lists the document types the service accepts. Used to
// filter directory input.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".tif":  true,
}

func buildClient(apiKey string, opts *cliOptions) (renamed.Client, error) {
	return renamed.NewClient(apiKey,
		renamed.WithBaseURL(opts.baseURL),
		renamed.WithTimeout(opts.timeout),
		renamed.WithDebug(opts.debug),
	)
}

func resolveAPIKey(opts *cliOptions) (string, error) {
	if opts.apiKey != "" {
		return opts.apiKey, nil
	}

	if env := os.Getenv("RENAMED_API_KEY"); env != "" {
		opts.apiKey = env
		return env, nil
	}

	return "", errors.New("api key is required (flag --api-key or RENAMED_API_KEY)")
}

func parseSplitMode(mode string) (renamed.SplitMode, error) {
	switch strings.ToLower(mode) {
	case "":
		return "", nil
	case string(renamed.SplitModeAuto):
		return renamed.SplitModeAuto, nil
	case string(renamed.SplitModePages):
		return renamed.SplitModePages, nil
	case string(renamed.SplitModeBlank):
		return renamed.SplitModeBlank, nil
	default:
		return "", fmt.Errorf("unsupported split mode: %s", mode)
	}
}

// collectInputFiles expands a file or directory path into the supported
// documents beneath it.
func collectInputFiles(p string) ([]string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	if info.Mode().IsRegular() {
		if supportedExtensions[strings.ToLower(filepath.Ext(p))] {
			return []string{p}, nil
		}
		return nil, fmt.Errorf("unsupported file type: %s", p)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is neither file nor directory: %s", p)
	}

	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(p, entry.Name()))
		}
	}

	return files, nil
}

func writeJSON(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func defaultDownloadName(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return "download.bin"
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return "download.bin"
	}

	return name
}

func downloadToFile(ctx context.Context, cli renamed.Client, downloadURL, targetPath string) error {
	dir := filepath.Dir(targetPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create download dir: %w", err)
		}
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	return cli.DownloadFileTo(ctx, downloadURL, file)
}

func printOut(cmd *cobra.Command, msg string, attrs ...slog.Attr) {
	logAt(cmd, slog.LevelInfo, msg, attrs...)
}

func logAt(cmd *cobra.Command, level slog.Level, msg string, attrs ...slog.Attr) {
	logger := newLogger(cmd.OutOrStdout(), level)
	logger.LogAttrs(cmd.Context(), level, msg, attrs...)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
