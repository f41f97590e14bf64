package postgre

import (
	"fmt"
	"strings"

	repo "air-cargo-assistant/internal/booking/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneBooking.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneBookingOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.BookingID != "" {
		conditions = append(conditions, fmt.Sprintf("booking_id = $%d", idx))
		args = append(args, opt.BookingID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting bookings.
func (r *implRepository) buildCountQuery(opt repo.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for ListBookings.
func (r *implRepository) buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY created_at DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
