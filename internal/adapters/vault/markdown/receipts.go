package markdown

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/blackbox-se/obsidian_ekonomi/internal/apperrors"
)

// RelocateReceipt copies the file at sourcePath into the vault's receipt
// folder under a templated name and returns the vault-relative path used for
// the ![[...]] embed. Callers treat a failure as "no receipt" rather than
// failing the transaction write.
func (r *VaultRepository) RelocateReceipt(ctx context.Context, sourcePath, description string) (string, error) {
	if r.settings.VaultPath == "" {
		return "", apperrors.ErrVaultNotConfigured
	}

	now := r.now()
	folder := expandTemplate(r.settings.ReceiptFolder, now)
	filename := strings.ReplaceAll(expandTemplate(r.settings.ReceiptFilename, now),
		"{beskrivning}", sanitizeDescription(description))

	destPath := filepath.Join(r.settings.VaultPath, folder, filename)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt folder: %w", err)
	}

	if err := copyFile(sourcePath, destPath); err != nil {
		return "", fmt.Errorf("failed to copy receipt into vault: %w", err)
	}

	relative := folder + "/" + filename
	r.logger.Debug("Relocated receipt into vault", slog.String("path", relative))
	return relative, nil
}

// sanitizeDescription keeps the letters and digits of the first 20 characters,
// producing a filesystem-safe filename token.
func sanitizeDescription(description string) string {
	runes := []rune(description)
	if len(runes) > 20 {
		runes = runes[:20]
	}

	var b strings.Builder
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func copyFile(sourcePath, destPath string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}
