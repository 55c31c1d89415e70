package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// --- ReviewRepository implementation ---

func (r *reviewRepository) Create(ctx context.Context, rv model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (id, product_id, user_id, rating, comment)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at`
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if err := r.storage.pool.QueryRow(ctx, query, rv.ID, rv.ProductID, rv.UserID, rv.Rating, rv.Comment).Scan(&rv.CreatedAt); err != nil {
		return nil, mapWriteError(err)
	}
	return &rv, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	const query = `SELECT r.id, r.product_id, r.user_id, u.name, r.rating, r.comment, r.reply, r.replied_at, r.created_at
                   FROM reviews r JOIN users u ON u.id = r.user_id
                   WHERE r.product_id=$1 ORDER BY r.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.Reply, &rv.RepliedAt, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Reply(ctx context.Context, reviewID, reply, message string) (*model.ReviewReply, error) {
	const update = `UPDATE reviews SET reply=$1, replied_at=NOW()
                    WHERE id=$2
                    RETURNING id, product_id, user_id, rating, comment, reply, replied_at, created_at`

	var result *model.ReviewReply
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var rv model.Review
		err := tx.QueryRow(ctx, update, reply, reviewID).
			Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.Reply, &rv.RepliedAt, &rv.CreatedAt)
		if err != nil {
			return notFound(err)
		}

		n, err := insertNotification(ctx, tx, rv.UserID, message, nil)
		if err != nil {
			return err
		}
		result = &model.ReviewReply{Review: rv, Notification: *n}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
