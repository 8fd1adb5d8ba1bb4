package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/chirpnet/chirper-server/internal/model"
)

var _ model.TweetStore = (*TweetRepository)(nil)

type TweetRepository struct {
	db *Connection
}

func NewTweetRepository(db *Connection) *TweetRepository {
	return &TweetRepository{
		db: db,
	}
}

// Create inserts the tweet, credits the treasury and appends the TweetAdded
// event in a single transaction. The id is derived from the highest existing
// id; rows are never physically removed, so this equals the count of prior
// successful creations.
func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet, paidWei *big.Int) (model.Tweet, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertTweet := `INSERT INTO tweets (id, author, content, image_url, paid_wei)
					SELECT COALESCE(MAX(id) + 1, 0), $1, $2, $3, $4::numeric FROM tweets
					RETURNING id, created_at`

	saved := tweet
	saved.PaidWei = new(big.Int).Set(paidWei)
	err = tx.QueryRow(ctx, insertTweet,
		addressKey(tweet.Author), tweet.Content, tweet.ImageURL, paidWei.String(),
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("failed to insert tweet: %w", err)
	}

	creditTreasury := `UPDATE treasury SET balance_wei = balance_wei + $1::numeric WHERE id = 1`
	if _, err := tx.Exec(ctx, creditTreasury, paidWei.String()); err != nil {
		return model.Tweet{}, fmt.Errorf("failed to credit treasury: %w", err)
	}

	appendEvent := `INSERT INTO events (kind, tweet_id, author) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, appendEvent, string(model.EventTweetAdded), saved.ID, addressKey(tweet.Author)); err != nil {
		return model.Tweet{}, fmt.Errorf("failed to append event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Tweet{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// GetByID returns the tweet regardless of its deleted flag: the id stays
// valid for the tweet's entire lifetime.
func (r *TweetRepository) GetByID(ctx context.Context, id int64) (model.Tweet, error) {
	query := `SELECT id, author, content, image_url, paid_wei::text, deleted, created_at, deleted_at
			  FROM tweets WHERE id = $1`

	tweet, err := scanTweet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tweet{}, model.ErrNotFound
		}
		return model.Tweet{}, fmt.Errorf("failed to get tweet by id: %w", err)
	}

	return tweet, nil
}

func (r *TweetRepository) List(ctx context.Context, includeDeleted bool) ([]model.Tweet, error) {
	query := `SELECT id, author, content, image_url, paid_wei::text, deleted, created_at, deleted_at
			  FROM tweets WHERE $1 OR NOT deleted
			  ORDER BY id`

	rows, err := r.db.Query(ctx, query, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer rows.Close()

	var tweets []model.Tweet
	for rows.Next() {
		tweet, err := scanTweet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		tweets = append(tweets, tweet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tweets, nil
}

// MarkDeleted flips the deleted flag and appends the TweetDeleted event in a
// single transaction. The update matches live rows only, so the transition
// happens at most once per id.
func (r *TweetRepository) MarkDeleted(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	markDeleted := `UPDATE tweets SET deleted = TRUE, deleted_at = NOW() WHERE id = $1 AND NOT deleted`
	cmd, err := tx.Exec(ctx, markDeleted, id)
	if err != nil {
		return fmt.Errorf("failed to mark tweet deleted: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	appendEvent := `INSERT INTO events (kind, tweet_id) VALUES ($1, $2)`
	if _, err := tx.Exec(ctx, appendEvent, string(model.EventTweetDeleted), id); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanTweet(row pgx.Row) (model.Tweet, error) {
	var tweet model.Tweet
	var author, paidWei string
	err := row.Scan(&tweet.ID, &author, &tweet.Content, &tweet.ImageURL, &paidWei,
		&tweet.Deleted, &tweet.CreatedAt, &tweet.DeletedAt)
	if err != nil {
		return model.Tweet{}, err
	}
	tweet.Author = common.HexToAddress(author)

	wei, ok := new(big.Int).SetString(paidWei, 10)
	if !ok {
		return model.Tweet{}, fmt.Errorf("invalid paid_wei value: %q", paidWei)
	}
	tweet.PaidWei = wei

	return tweet, nil
}
