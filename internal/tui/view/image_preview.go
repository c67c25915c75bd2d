package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
)

// PreviewRows is the height of an inline image preview.
const PreviewRows = 18

const maxPreviewBytes = 5 * 1024 * 1024

// RenderImagePreview downloads the image and draws it with chafa as colored
// terminal symbols.
func RenderImagePreview(ctx context.Context, client *http.Client, imageURL string, width int) (string, error) {
	if width < 30 {
		width = 40
	}

	chafaPath, err := exec.LookPath("chafa")
	if err != nil {
		return "", fmt.Errorf("chafa is not installed")
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBytes))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	cmd := exec.CommandContext(ctx, chafaPath, chafaArgs(width, PreviewRows)...)
	cmd.Stdin = bytes.NewReader(imageData)
	output, err := cmd.CombinedOutput()
	trimmed := strings.TrimSpace(string(output))
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w: %s", err, trimmed)
	}
	if trimmed == "" {
		return "", fmt.Errorf("empty output")
	}
	return strings.TrimRight(string(output), "\r\n"), nil
}

// chafaArgs pins the output to symbol art so the preview can live inside a
// bordered, scrollable box.
func chafaArgs(width, rows int) []string {
	size := fmt.Sprintf("%dx%d", width, rows)
	return []string{
		"--size", size,
		"--view-size", size,
		"--align", "top,center",
		"--format", "symbols",
		"-",
	}
}
