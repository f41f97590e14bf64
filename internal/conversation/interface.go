package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Converse handles one turn: extract, merge, resolve any pending
	// confirmation, then dispatch on intent.
	Converse(ctx context.Context, input ConverseInput) (ConverseOutput, error)
}
