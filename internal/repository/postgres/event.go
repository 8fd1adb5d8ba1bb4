package postgres

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/model"
)

var _ model.EventStore = (*EventRepository)(nil)

type EventRepository struct {
	db *Connection
}

func NewEventRepository(db *Connection) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (r *EventRepository) ListAfter(ctx context.Context, afterSeq int64, limit int32) ([]model.Event, error) {
	query := `SELECT seq, kind, tweet_id, author, created_at
			  FROM events WHERE seq > $1
			  ORDER BY seq
			  LIMIT $2`

	rows, err := r.db.Query(ctx, query, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var event model.Event
		var kind string
		var author *string
		if err := rows.Scan(&event.Seq, &kind, &event.TweetID, &author, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Kind = model.EventKind(kind)
		if author != nil {
			addr := common.HexToAddress(*author)
			event.Author = &addr
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
