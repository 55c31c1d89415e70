package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
)

const addressColumns = `id, user_id, label, recipient, phone, street, city, province, postal_code, is_default, created_at`

// --- AddressRepository implementation ---

func (r *addressRepository) ListByUser(ctx context.Context, userID string) ([]model.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id=$1 ORDER BY is_default DESC, created_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create stores the address. The first address of a user always becomes the default.
func (r *addressRepository) Create(ctx context.Context, a model.Address) (*model.Address, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM addresses WHERE user_id=$1`, a.UserID).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			a.IsDefault = true
		}
		if a.IsDefault {
			if err := clearDefault(ctx, tx, a.UserID); err != nil {
				return err
			}
		}

		const insert = `INSERT INTO addresses (id, user_id, label, recipient, phone, street, city, province, postal_code, is_default)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                        RETURNING created_at`
		return tx.QueryRow(ctx, insert, a.ID, a.UserID, a.Label, a.Recipient, a.Phone, a.Street, a.City, a.Province, a.PostalCode, a.IsDefault).
			Scan(&a.CreatedAt)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &a, nil
}

func (r *addressRepository) Update(ctx context.Context, a model.Address) (*model.Address, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if a.IsDefault {
			if err := clearDefault(ctx, tx, a.UserID); err != nil {
				return err
			}
		}

		const update = `UPDATE addresses
                        SET label=$3, recipient=$4, phone=$5, street=$6, city=$7, province=$8, postal_code=$9, is_default=$10
                        WHERE id=$1 AND user_id=$2
                        RETURNING created_at`
		err := tx.QueryRow(ctx, update, a.ID, a.UserID, a.Label, a.Recipient, a.Phone, a.Street, a.City, a.Province, a.PostalCode, a.IsDefault).
			Scan(&a.CreatedAt)
		return notFound(err)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func clearDefault(ctx context.Context, tx pgx.Tx, userID string) error {
	_, err := tx.Exec(ctx, `UPDATE addresses SET is_default=FALSE WHERE user_id=$1 AND is_default`, userID)
	return err
}

func scanAddress(row pgx.Row) (*model.Address, error) {
	var a model.Address
	err := row.Scan(&a.ID, &a.UserID, &a.Label, &a.Recipient, &a.Phone, &a.Street, &a.City, &a.Province, &a.PostalCode, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
