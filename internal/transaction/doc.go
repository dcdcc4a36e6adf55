// Package transaction stores PIX charges created by a user and renders
// their "copia e cola" payloads as QR codes.
//
// Amounts are shopspring/decimal values persisted as numeric(12,2); every
// charge carries a 25-character TxID derived from its UUID.
package transaction
