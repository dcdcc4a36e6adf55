package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pixkit/handler"
	"github.com/dmitrymomot/pixkit/internal/transaction"
)

// amountInput accepts the amount either as a masked string ("R$ 1.234,56")
// or as a plain JSON number (1234.56).
type amountInput string

func (a *amountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = amountInput(n.String())
	return nil
}

type createTransactionRequest struct {
	UserID      string      `path:"userID" json:"-"`
	ClientName  string      `json:"client_name"`
	PixKey      string      `json:"pix_key"`
	City        string      `json:"city"`
	Amount      amountInput `json:"amount"`
	Description string      `json:"description"`
}

type listTransactionsRequest struct {
	UserID string `path:"userID"`
}

type qrCodeRequest struct {
	UserID string `path:"userID"`
	ID     string `path:"id"`
	Size   int    `query:"size"`
}

func (a *API) createTransaction(ctx handler.Context, req createTransactionRequest) handler.Response {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return handler.Error(errUserNotFound)
	}

	tx, err := a.transactions.Create(ctx, transaction.CreateInput{
		UserID:      userID,
		ClientName:  req.ClientName,
		PixKey:      req.PixKey,
		City:        req.City,
		Amount:      string(req.Amount),
		Description: req.Description,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(tx, handler.WithJSONStatus(http.StatusCreated))
}

func (a *API) listTransactions(ctx handler.Context, req listTransactionsRequest) handler.Response {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return handler.Error(errUserNotFound)
	}

	txs, err := a.transactions.List(ctx, userID)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(txs, handler.WithJSONMeta(map[string]any{"count": len(txs)}))
}

func (a *API) transactionQRCode(ctx handler.Context, req qrCodeRequest) handler.Response {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return handler.Error(errUserNotFound)
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return handler.Error(errTransactionNotFound)
	}

	png, err := a.transactions.QRCode(ctx, userID, id, req.Size)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Blob("image/png", png,
		handler.WithBlobHeader("Cache-Control", "private, max-age=86400"),
	)
}
