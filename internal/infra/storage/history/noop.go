package history

import (
	"context"

	"github.com/m04kA/SMC-SalonBot/internal/domain"
)

// NoopJournal заглушка журнала для работы без базы данных
// (database.enabled = false)
type NoopJournal struct{}

// NewNoopJournal создает журнал-заглушку
func NewNoopJournal() *NoopJournal {
	return &NoopJournal{}
}

// Append ничего не делает
func (*NoopJournal) Append(_ context.Context, _ *domain.Resolution) error {
	return nil
}
