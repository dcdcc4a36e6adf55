package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/pixkit/pkg/logger"
	"github.com/dmitrymomot/pixkit/pkg/pix"
	"github.com/dmitrymomot/pixkit/pkg/qrcode"
	"github.com/dmitrymomot/pixkit/pkg/sanitizer"
	"github.com/dmitrymomot/pixkit/pkg/validator"
)

var (
	minAmount = decimal.RequireFromString("0.01")
	// numeric(12,2) upper bound
	maxAmount = decimal.RequireFromString("9999999999.99")
)

// Storage defines the persistence operations required by Service.
type Storage interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]Transaction, error)
}

// Service creates PIX charges and renders their QR codes.
type Service struct {
	storage Storage
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the payment form, builds the BR Code payload and stores
// the transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Transaction, error) {
	clientName := sanitizer.CapitalizeWords(in.ClientName)
	key := strings.TrimSpace(in.PixKey)
	city := sanitizer.CapitalizeWords(in.City)
	description := sanitizer.NormalizeWhitespace(in.Description)

	// Lengths are checked on what the BR Code will actually carry.
	rules := []validator.Rule{
		validator.MinLen("client_name", folded(clientName), 3),
		validator.MinLen("pix_key", key, 5),
		validator.ValidPixKey("pix_key", key),
		validator.MinLen("city", folded(city), 2),
		validator.MinLen("description", folded(description), 5),
	}

	amount, err := pix.ParseAmount(in.Amount)
	if err != nil {
		rules = append(rules, invalidAmount())
	} else {
		rules = append(rules,
			validator.MinAmount("amount", amount, minAmount),
			validator.MaxAmount("amount", amount, maxAmount),
			validator.DecimalPlaces("amount", amount, 2),
		)
	}

	if room, err := pix.MaxDescriptionLength(key); err == nil {
		rules = append(rules, validator.MaxLen("description", folded(description), room))
	}

	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	parsedKey, err := pix.ParseKey(key)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	tx := &Transaction{
		ID:          id,
		UserID:      in.UserID,
		ClientName:  clientName,
		PixKey:      parsedKey.Value,
		KeyType:     parsedKey.Type,
		City:        city,
		Amount:      amount,
		Description: description,
		TxID:        txID(id),
		CreatedAt:   s.now().UTC(),
	}

	tx.Payload, err = pix.Payload{
		Key:          tx.PixKey,
		MerchantName: tx.ClientName,
		MerchantCity: tx.City,
		Amount:       tx.Amount,
		TxID:         tx.TxID,
		Description:  tx.Description,
	}.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build pix payload: %w", err)
	}

	if err := s.storage.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "pix transaction created",
		logger.UserID(tx.UserID),
		logger.TransactionID(tx.ID),
		slog.String("key_type", string(tx.KeyType)),
		slog.String("amount", tx.Amount.StringFixed(2)),
		logger.Component("transaction"),
	)

	return tx, nil
}

// List returns the user's transactions, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	txs, err := s.storage.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return txs, nil
}

// Get returns a transaction owned by userID.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	tx, err := s.storage.GetTransaction(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// QRCode renders the stored payload of a transaction as a PNG image.
// A non-positive size selects qrcode.DefaultSize.
func (s *Service) QRCode(ctx context.Context, userID, id uuid.UUID, size int) ([]byte, error) {
	tx, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Generate(tx.Payload, qrcode.WithSize(size))
	if err != nil {
		return nil, errors.Join(ErrQRCodeFailed, err)
	}
	return png, nil
}

// txID derives the 25-character alphanumeric reference sent in field 62/05.
func txID(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:25]
}

func folded(s string) string {
	return sanitizer.NormalizeWhitespace(sanitizer.ASCIIFold(s))
}

func invalidAmount() validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:          "amount",
			Message:        "invalid amount",
			TranslationKey: "validation.amount",
		},
	}
}
