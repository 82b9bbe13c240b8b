package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/repository"
	apperrors "github.com/Shrihari6/medflow-nova/pkg/errors"
)

type roomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Get(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	query := `SELECT * FROM rooms WHERE id = $1`
	var room model.Room
	err := r.db.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("room", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, onlyAvailable bool) ([]*model.Room, error) {
	query := `SELECT * FROM rooms ORDER BY room_number`
	if onlyAvailable {
		query = `SELECT * FROM rooms WHERE is_occupied = false ORDER BY room_number`
	}
	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *roomRepository) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	query := `UPDATE rooms SET is_occupied = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, occupied, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update room occupancy: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("room", nil)
	}
	return nil
}
