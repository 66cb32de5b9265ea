package lib

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QRCodePNG renders content as a 256px PNG with medium error correction.
func QRCodePNG(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, 256)
}
