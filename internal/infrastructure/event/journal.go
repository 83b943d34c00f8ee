package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/smartretail/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JournalEntry is one row of the append-only mutation log. The sequence
// gives a total order over all ledger mutations; replaying entries in
// sequence order reconstructs the ledgers.
type JournalEntry struct {
	Sequence      int64     `gorm:"primaryKey;autoIncrement" json:"sequence"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"event_id"`
	EventType     string    `gorm:"type:varchar(100);not null;index" json:"event_type"`
	AggregateID   uuid.UUID `gorm:"type:uuid;not null;index" json:"aggregate_id"`
	AggregateType string    `gorm:"type:varchar(100);not null" json:"aggregate_type"`
	Payload       string    `gorm:"type:text;not null" json:"payload"`
	OccurredAt    time.Time `gorm:"not null" json:"occurred_at"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

// TableName returns the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// Journal persists domain events as an ordered mutation log
type Journal struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewJournal creates a new Journal
func NewJournal(db *gorm.DB, log *zap.Logger) *Journal {
	return &Journal{db: db, log: log}
}

var _ shared.EventRecorder = (*Journal)(nil)

// Record appends the given domain events to the journal in call order
func (j *Journal) Record(ctx context.Context, events ...shared.DomainEvent) error {
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}

		entry := &JournalEntry{
			EventID:       ev.GetEventID(),
			EventType:     ev.GetEventType(),
			AggregateID:   ev.GetAggregateID(),
			AggregateType: ev.GetAggregateType(),
			Payload:       string(payload),
			OccurredAt:    ev.GetOccurredAt(),
		}
		if err := j.db.WithContext(ctx).Create(entry).Error; err != nil {
			return err
		}

		j.log.Debug("journal entry appended",
			zap.Int64("sequence", entry.Sequence),
			zap.String("event_type", entry.EventType),
			zap.String("aggregate_id", entry.AggregateID.String()),
		)
	}
	return nil
}

// Entries returns journal entries with a sequence greater than afterSeq,
// in sequence order. A limit of 0 means no limit.
func (j *Journal) Entries(ctx context.Context, afterSeq int64, limit int) ([]JournalEntry, error) {
	var entries []JournalEntry
	query := j.db.WithContext(ctx).
		Where("sequence > ?", afterSeq).
		Order("sequence ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Replay streams every journal entry in sequence order through fn,
// stopping at the first error
func (j *Journal) Replay(ctx context.Context, fn func(JournalEntry) error) error {
	const batchSize = 200

	var afterSeq int64
	for {
		entries, err := j.Entries(ctx, afterSeq, batchSize)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for _, entry := range entries {
			if err := fn(entry); err != nil {
				return err
			}
			afterSeq = entry.Sequence
		}
	}
}
