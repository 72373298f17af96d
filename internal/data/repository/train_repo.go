package repository

import (
	"context"
	"fmt"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TrainRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error)
	FindAll(ctx context.Context) ([]*entity.Train, error)
	Search(ctx context.Context, source, destination string) ([]*entity.Train, error)

	// Availability reads committed state without locks; the locked variant
	// of this computation lives inside BookingRepository.Reserve.
	Availability(ctx context.Context, trainID uuid.UUID, travelDate time.Time) (*entity.Availability, error)
}

type trainRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrainRepository(db database.PgxIface, log *zap.Logger) TrainRepository {
	return &trainRepository{
		db:  db,
		log: log.With(zap.String("repository", "train")),
	}
}

const trainColumns = `id, train_number, train_name, source, destination,
	       departure_time, arrival_time, total_seats, fare, created_at, updated_at`

func scanTrain(row pgx.Row) (*entity.Train, error) {
	var train entity.Train
	err := row.Scan(
		&train.ID,
		&train.TrainNumber,
		&train.TrainName,
		&train.Source,
		&train.Destination,
		&train.DepartureTime,
		&train.ArrivalTime,
		&train.TotalSeats,
		&train.Fare,
		&train.CreatedAt,
		&train.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &train, nil
}

func (tr *trainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE id = $1`

	train, err := scanTrain(tr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find train by ID",
			zap.Error(err),
			zap.String("train_id", id.String()),
		)
		return nil, fmt.Errorf("find train by ID %s: %w", id.String(), err)
	}

	return train, nil
}

func (tr *trainRepository) FindAll(ctx context.Context) ([]*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains ORDER BY train_number`

	rows, err := tr.db.Query(ctx, query)
	if err != nil {
		tr.log.Error("Failed to list trains", zap.Error(err))
		return nil, fmt.Errorf("list trains: %w", err)
	}
	defer rows.Close()

	return collectTrains(rows)
}

func (tr *trainRepository) Search(ctx context.Context, source, destination string) ([]*entity.Train, error) {
	// Case-insensitive exact station match
	query := `
		SELECT ` + trainColumns + `
		FROM trains
		WHERE LOWER(source) = LOWER($1) AND LOWER(destination) = LOWER($2)
		ORDER BY departure_time
	`

	rows, err := tr.db.Query(ctx, query, source, destination)
	if err != nil {
		tr.log.Error("Failed to search trains",
			zap.Error(err),
			zap.String("source", source),
			zap.String("destination", destination),
		)
		return nil, fmt.Errorf("search trains %s to %s: %w", source, destination, err)
	}
	defer rows.Close()

	return collectTrains(rows)
}

func collectTrains(rows pgx.Rows) ([]*entity.Train, error) {
	trains := make([]*entity.Train, 0)
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			return nil, fmt.Errorf("scan train row: %w", err)
		}
		trains = append(trains, train)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate train rows: %w", err)
	}
	return trains, nil
}

func (tr *trainRepository) Availability(ctx context.Context, trainID uuid.UUID, travelDate time.Time) (*entity.Availability, error) {
	var totalSeats int
	err := tr.db.QueryRow(ctx, `SELECT total_seats FROM trains WHERE id = $1`, trainID).Scan(&totalSeats)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to load train capacity",
			zap.Error(err),
			zap.String("train_id", trainID.String()),
		)
		return nil, fmt.Errorf("load train capacity %s: %w", trainID.String(), err)
	}

	var bookedSeats int
	err = tr.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(seats_booked), 0)
		FROM bookings
		WHERE train_id = $1 AND travel_date = $2 AND booking_status = $3
	`, trainID, travelDate, entity.BookingStatusConfirmed).Scan(&bookedSeats)
	if err != nil {
		tr.log.Error("Failed to sum booked seats",
			zap.Error(err),
			zap.String("train_id", trainID.String()),
			zap.Time("travel_date", travelDate),
		)
		return nil, fmt.Errorf("sum booked seats for train %s: %w", trainID.String(), err)
	}

	return &entity.Availability{
		TotalSeats:     totalSeats,
		BookedSeats:    bookedSeats,
		AvailableSeats: totalSeats - bookedSeats,
	}, nil
}
