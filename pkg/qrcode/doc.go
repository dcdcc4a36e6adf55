// Package qrcode renders QR codes as PNG images for PIX "copia e cola"
// payloads. Encoding is delegated to github.com/skip2/go-qrcode.
//
//	png, err := qrcode.Generate(payload, qrcode.WithSize(320))
//	uri, err := qrcode.GenerateBase64Image(payload)
//
// Errors are package-level variables for use with errors.Is.
package qrcode
