package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type RoomRepository struct {
	Store store.Store
}

func NewRoomRepository(st store.Store) *RoomRepository {
	return &RoomRepository{Store: st}
}

func (r *RoomRepository) All(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if _, err := r.Store.Get(ctx, store.Rooms, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Save(ctx context.Context, rooms []models.Room) error {
	return r.Store.Put(ctx, store.Rooms, rooms)
}
