package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/pixkit/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by Repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements Storage on PostgreSQL.
type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const transactionColumns = `id, user_id, client_name, pix_key, key_type, city, amount, description, txid, payload, created_at`

func scanTransaction(row pgx.Row) (*Transaction, error) {
	var tx Transaction
	if err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.ClientName,
		&tx.PixKey,
		&tx.KeyType,
		&tx.City,
		&tx.Amount,
		&tx.Description,
		&tx.TxID,
		&tx.Payload,
		&tx.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pix_transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		tx.ID, tx.UserID, tx.ClientName, tx.PixKey, tx.KeyType, tx.City,
		tx.Amount, tx.Description, tx.TxID, tx.Payload, tx.CreatedAt,
	)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return ErrUnknownUser
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM pix_transactions WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select transaction: %w", err)
	}
	return tx, nil
}

func (r *Repository) ListTransactions(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM pix_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}

	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Transaction, error) {
		tx, err := scanTransaction(row)
		if err != nil {
			return Transaction{}, err
		}
		return *tx, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}
	return txs, nil
}
