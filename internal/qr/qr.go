package qr

import (
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// TempFileName derives the transient QR image path from the company code:
// lowercased, spaces to underscores, dots stripped.
func TempFileName(dir, companyCode string) string {
	name := strings.ToLower(companyCode)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ".", "")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, name+"_qr.png")
}

// WriteFile encodes payload as a QR png at path. The caller registers the
// file as an asset and removes it afterwards.
func WriteFile(payload, path string) error {
	return qrcode.WriteFile(payload, qrcode.Medium, 256, path)
}
