// Package pix builds and inspects static PIX "copia e cola" payloads as defined
// by the Banco Central do Brasil BR Code specification (EMV® QRCPS-MPM).
//
// A payload is a sequence of TLV fields (two-digit ID, two-digit length,
// value) terminated by a CRC16-CCITT-FALSE checksum. The string produced by
// Payload.Build is what banking apps read from the QR code and what users
// paste into the "PIX copia e cola" screen.
//
// # Usage
//
//	amount, err := pix.ParseAmount("1.234,56")
//	if err != nil {
//		// handle error
//	}
//
//	payload, err := pix.Payload{
//		Key:          "11144477735",
//		MerchantName: "Fulano de Tal",
//		MerchantCity: "São Paulo",
//		Amount:       amount,
//		Description:  "Pedido 42",
//	}.Build()
//
// # Keys
//
// ParseKey classifies and normalizes a PIX key (CPF, CNPJ, e-mail, phone or
// random EVP key). Build only accepts keys that ParseKey understands.
//
// # Money
//
// Amounts are github.com/shopspring/decimal values so that no floating point
// rounding leaks into payloads. ParseAmount reads Brazilian masked input and
// FormatBRL renders amounts for display.
package pix
