package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
)

const bookingColumns = `id, booking_id, customer_name, customer_email, origin, destination,
	weight, volume, cargo_type, shipping_date, price, status, created_at, updated_at`

// CreateBooking inserts a new booking row and returns the created entity.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings (booking_id, customer_name, customer_email, origin, destination,
			weight, volume, cargo_type, shipping_date, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s`, bookingColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.BookingID, opt.CustomerName, opt.CustomerEmail, opt.Origin, opt.Destination,
		opt.Weight, opt.Volume, opt.CargoType, opt.ShippingDate, opt.Price, opt.Status,
	)

	b, err := scanBooking(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBooking retrieves a single booking by the provided filters.
// Returns zero-value Booking (BookingID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (model.Booking, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE %s LIMIT 1", bookingColumns, mods)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// UpdateBookingStatus transitions a booking's status and bumps updated_at.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (model.Booking, error) {
	query := fmt.Sprintf(`
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE booking_id = $3
		RETURNING %s`, bookingColumns)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, opt.Status, time.Now().UTC(), opt.BookingID))
	if err == sql.ErrNoRows {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return model.Booking{}, repo.ErrFailedToUpdate
	}
	return b, nil
}

// ListBookings returns bookings newest first, plus the total matching count.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM bookings %s", bookingColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	return bookings, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var b model.Booking
	var customerName, customerEmail sql.NullString
	var volume sql.NullFloat64

	err := row.Scan(
		&b.ID, &b.BookingID, &customerName, &customerEmail, &b.Origin, &b.Destination,
		&b.Weight, &volume, &b.CargoType, &b.ShippingDate, &b.Price, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}

	b.CustomerName = customerName.String
	b.CustomerEmail = customerEmail.String
	b.Volume = volume.Float64
	return b, nil
}
