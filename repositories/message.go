package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"hearing-hub/contract"
	"hearing-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

var _ contract.IMessageRepository = MessageRepository{}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessage persists an instant message in BadgerDB.
// The key is formatted as "im:{conference_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func (m MessageRepository) StoreMessage(message domain.InstantMessage) error {
	key := fmt.Sprintf("%s%019d:%s",
		conferencePrefix(message.ConferenceID),
		message.Timestamp.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages returns the conversation between the admins and one participant,
// oldest first. It stops once limitMessages is reached.
func (m MessageRepository) GetMessages(conferenceID uuid.UUID, participant domain.Username) ([]domain.InstantMessage, error) {
	var messages []domain.InstantMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(conferencePrefix(conferenceID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			var message domain.InstantMessage
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			})
			if err != nil {
				return err
			}
			if message.ParticipantUsername.Matches(participant.String()) {
				messages = append(messages, message)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteConference drops the whole history of a conference.
func (m MessageRepository) DeleteConference(conferenceID uuid.UUID) error {
	return m.db.DropPrefix([]byte(conferencePrefix(conferenceID)))
}

func conferencePrefix(conferenceID uuid.UUID) string {
	return fmt.Sprintf("im:%s:", conferenceID)
}
