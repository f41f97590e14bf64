package usecase

import (
	"context"
	"errors"

	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/extractor"
	"air-cargo-assistant/internal/model"
)

// fakeExtractor returns whatever the test configures, no LLM involved.
type fakeExtractor struct {
	extractFn func(ctx context.Context, message string, history []model.TurnMessage) (extractor.Result, error)
}

func (f *fakeExtractor) Extract(ctx context.Context, message string, history []model.TurnMessage) (extractor.Result, error) {
	if f.extractFn != nil {
		return f.extractFn(ctx, message, history)
	}
	return extractor.Fallback(), nil
}

// fakeBookingUC records calls and returns configured results. Methods
// without an override fail loudly so tests only pass through the paths
// they mean to exercise.
type fakeBookingUC struct {
	quoteFn  func(ctx context.Context, input booking.QuoteInput) (booking.QuoteOutput, error)
	createFn func(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error)
	cancelFn func(ctx context.Context, input booking.CancelInput) (booking.CancelOutput, error)
	trackFn  func(ctx context.Context, bookingID string) (booking.TrackOutput, error)

	quoteCalls  int
	createCalls int
	cancelCalls int
	trackCalls  int
}

var errUnexpectedCall = errors.New("unexpected booking call")

func (f *fakeBookingUC) Quote(ctx context.Context, input booking.QuoteInput) (booking.QuoteOutput, error) {
	f.quoteCalls++
	if f.quoteFn == nil {
		return booking.QuoteOutput{}, errUnexpectedCall
	}
	return f.quoteFn(ctx, input)
}

func (f *fakeBookingUC) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	f.createCalls++
	if f.createFn == nil {
		return booking.CreateOutput{}, errUnexpectedCall
	}
	return f.createFn(ctx, input)
}

func (f *fakeBookingUC) Cancel(ctx context.Context, input booking.CancelInput) (booking.CancelOutput, error) {
	f.cancelCalls++
	if f.cancelFn == nil {
		return booking.CancelOutput{}, errUnexpectedCall
	}
	return f.cancelFn(ctx, input)
}

func (f *fakeBookingUC) Track(ctx context.Context, bookingID string) (booking.TrackOutput, error) {
	f.trackCalls++
	if f.trackFn == nil {
		return booking.TrackOutput{}, errUnexpectedCall
	}
	return f.trackFn(ctx, bookingID)
}

func (f *fakeBookingUC) List(ctx context.Context, input booking.ListInput) (booking.ListOutput, error) {
	return booking.ListOutput{}, errUnexpectedCall
}

func (f *fakeBookingUC) Routes(ctx context.Context) ([]model.Route, error) {
	return nil, errUnexpectedCall
}

// fixedResult builds an extractor that always returns the given result.
func fixedResult(result extractor.Result) *fakeExtractor {
	return &fakeExtractor{
		extractFn: func(context.Context, string, []model.TurnMessage) (extractor.Result, error) {
			return result, nil
		},
	}
}

// completeShipmentSlots fills every slot quoting and booking require.
func completeShipmentSlots() model.Slots {
	return model.Slots{
		Origin:       model.StringPtr("JFK"),
		Destination:  model.StringPtr("LHR"),
		Weight:       model.Float64Ptr(5),
		CargoType:    model.StringPtr("general"),
		ShippingDate: model.StringPtr("2026-06-15"),
	}
}
