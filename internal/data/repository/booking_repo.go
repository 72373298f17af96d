package repository

import (
	"context"
	"fmt"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/fare"
	"railway-booking/pkg/apperror"
	"railway-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Reserve runs the atomic check-and-reserve transaction. On success the
	// booking's TotalFare and Status are filled in and exactly one row is
	// committed; on any failure nothing is persisted.
	Reserve(ctx context.Context, booking *entity.Booking) error

	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db            database.PgxIface
	lockTimeoutMS int
	log           *zap.Logger
}

func NewBookingRepository(db database.PgxIface, lockTimeoutMS int, log *zap.Logger) BookingRepository {
	if lockTimeoutMS <= 0 {
		lockTimeoutMS = 3000
	}
	return &bookingRepository{
		db:            db,
		lockTimeoutMS: lockTimeoutMS,
		log:           log.With(zap.String("repository", "booking")),
	}
}

// Reserve serializes against other reservations on the same train via a row
// lock on the train's capacity record, recomputes booked seats for the
// (train, travel date) key under that lock, and inserts the confirmed
// booking. The deferred rollback guarantees no partial writes on any exit
// path before commit.
func (r *bookingRepository) Reserve(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.TransientStorage("begin reservation transaction", err)
	}
	defer tx.Rollback(ctx)

	// Bounded wait for the capacity lock; expiry surfaces as 55P03 which
	// storageError classifies as transient.
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeoutMS)); err != nil {
		return storageError("set reservation lock timeout", err)
	}

	var totalSeats int
	var farePerSeat int64
	err = tx.QueryRow(ctx,
		`SELECT total_seats, fare FROM trains WHERE id = $1 FOR UPDATE`,
		booking.TrainID,
	).Scan(&totalSeats, &farePerSeat)
	if err == pgx.ErrNoRows {
		return apperror.NotFound("train %s not found", booking.TrainID.String())
	}
	if err != nil {
		r.log.Error("Failed to lock train capacity",
			zap.Error(err),
			zap.String("train_id", booking.TrainID.String()),
		)
		return storageError("lock train capacity", err)
	}

	var bookedSeats int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(seats_booked), 0)
		FROM bookings
		WHERE train_id = $1 AND travel_date = $2 AND booking_status = $3
	`, booking.TrainID, booking.TravelDate, entity.BookingStatusConfirmed).Scan(&bookedSeats)
	if err != nil {
		r.log.Error("Failed to sum booked seats under lock",
			zap.Error(err),
			zap.String("train_id", booking.TrainID.String()),
		)
		return storageError("sum booked seats", err)
	}

	available := totalSeats - bookedSeats
	if available < booking.SeatsBooked {
		return apperror.InsufficientCapacity(available)
	}

	totalFare, err := fare.Total(farePerSeat, booking.SeatsBooked)
	if err != nil {
		return err
	}
	booking.TotalFare = totalFare
	booking.Status = entity.BookingStatusConfirmed

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, user_id, train_id, passenger_name, passenger_email,
		                      travel_date, seats_booked, booking_reference,
		                      booking_status, total_fare, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		booking.ID,
		booking.UserID,
		booking.TrainID,
		booking.PassengerName,
		booking.PassengerEmail,
		booking.TravelDate,
		booking.SeatsBooked,
		booking.BookingReference,
		booking.Status,
		booking.TotalFare,
		booking.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The reference collided with an existing booking; the service
			// regenerates and retries the whole transaction.
			return apperror.DuplicateReference(err)
		}
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_reference", booking.BookingReference),
		)
		return storageError("insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.TransientStorage("commit reservation", err)
	}

	return nil
}

const bookingColumns = `id, user_id, train_id, passenger_name, passenger_email,
	       travel_date, seats_booked, booking_reference, booking_status, total_fare, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TrainID,
		&booking.PassengerName,
		&booking.PassengerEmail,
		&booking.TravelDate,
		&booking.SeatsBooked,
		&booking.BookingReference,
		&booking.Status,
		&booking.TotalFare,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}
