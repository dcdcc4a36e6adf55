package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/pixkit/pkg/pix"
)

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrUnknownUser  = errors.New("transaction owner does not exist")
	ErrQRCodeFailed = errors.New("failed to render transaction QR code")
)

// Transaction is a generated PIX charge and its BR Code payload.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	ClientName  string          `json:"client_name"`
	PixKey      string          `json:"pix_key"`
	KeyType     pix.KeyType     `json:"key_type"`
	City        string          `json:"city"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TxID        string          `json:"txid"`
	Payload     string          `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateInput carries the payment form as submitted. Amount may be masked,
// e.g. "R$ 1.234,56".
type CreateInput struct {
	UserID      uuid.UUID
	ClientName  string
	PixKey      string
	City        string
	Amount      string
	Description string
}
