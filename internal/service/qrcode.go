package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the public table landing URL for a QR token.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(qrCode string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	qrData := fmt.Sprintf("%s/tables/qr/%s", strings.TrimRight(g.BaseURL, "/"), qrCode)
	return qrcode.Encode(qrData, qrcode.Medium, size)
}
