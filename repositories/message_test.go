package repositories

import (
	"log/slog"
	"testing"
	"time"

	"hearing-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func conversation(conferenceID uuid.UUID, participant domain.Username, at time.Time) []domain.InstantMessage {
	return []domain.InstantMessage{
		{ID: uuid.New(), ConferenceID: conferenceID, From: participant.String(), To: domain.AdminChannel,
			Message: "I cannot hear the judge", ParticipantUsername: participant, Timestamp: at},
		{ID: uuid.New(), ConferenceID: conferenceID, From: "vho@hearings.net", FromDisplayName: "Vera", To: uuid.NewString(),
			Message: "Please check your headset", ParticipantUsername: participant, Timestamp: at.Add(1 * time.Minute)},
		{ID: uuid.New(), ConferenceID: conferenceID, From: participant.String(), To: domain.AdminChannel,
			Message: "Works now", ParticipantUsername: participant, Timestamp: at.Add(2 * time.Minute)},
	}
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	conferenceID := uuid.New()
	participant := domain.NewUsername("individual@hearings.net")
	messages := conversation(conferenceID, participant, time.Now().UTC())

	// Stored in reverse order on purpose
	for i := len(messages) - 1; i >= 0; i-- {
		req.NoError(repository.StoreMessage(messages[i]))
	}

	fetched, err := repository.GetMessages(conferenceID, participant)
	req.NoError(err)
	req.Len(fetched, len(messages))
	for i := range messages {
		req.Equal(messages[i].ID, fetched[i].ID)
		req.Equal(messages[i].Message, fetched[i].Message)
		req.True(messages[i].Timestamp.Equal(fetched[i].Timestamp))
	}
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openDB(t), slog.Default(), &limit)
	conferenceID := uuid.New()
	participant := domain.NewUsername("individual@hearings.net")

	for _, message := range conversation(conferenceID, participant, time.Now().UTC()) {
		req.NoError(repository.StoreMessage(message))
	}

	fetched, err := repository.GetMessages(conferenceID, participant)
	req.NoError(err)
	req.Len(fetched, limit)
}

func Test_Messages_Are_Scoped_By_Conference_And_Participant(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	conferenceID, otherConferenceID := uuid.New(), uuid.New()
	ivy := domain.NewUsername("ivy@hearings.net")
	rob := domain.NewUsername("rob@hearings.net")
	at := time.Now().UTC()

	// Given two conversations in one conference and one in another
	for _, messages := range [][]domain.InstantMessage{
		conversation(conferenceID, ivy, at),
		conversation(conferenceID, rob, at),
		conversation(otherConferenceID, ivy, at),
	} {
		for _, message := range messages {
			req.NoError(repository.StoreMessage(message))
		}
	}

	// Then only Ivy's messages of the first conference are returned
	fetched, err := repository.GetMessages(conferenceID, domain.NewUsername("IVY@hearings.net"))
	req.NoError(err)
	req.Len(fetched, 3)
	for _, message := range fetched {
		req.Equal(conferenceID, message.ConferenceID)
		req.Equal(ivy, message.ParticipantUsername)
	}
}

func Test_Delete_Conference_History(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	closed, open := uuid.New(), uuid.New()
	participant := domain.NewUsername("ivy@hearings.net")
	for _, message := range append(conversation(closed, participant, time.Now().UTC()),
		conversation(open, participant, time.Now().UTC())...) {
		req.NoError(repository.StoreMessage(message))
	}

	// When the closed conference is purged
	req.NoError(repository.DeleteConference(closed))

	// Then its history is gone and the other one is untouched
	fetched, err := repository.GetMessages(closed, participant)
	req.NoError(err)
	req.Empty(fetched)
	fetched, err = repository.GetMessages(open, participant)
	req.NoError(err)
	req.Len(fetched, 3)
}

func Test_Censored_Words_Seed_And_Load(t *testing.T) {
	req := require.New(t)
	repository := NewCensoredWordRepository(openDB(t))

	req.NoError(repository.Seed([]string{" Badger", "snake", "", "badger"}))
	req.NoError(repository.Seed([]string{"mushroom"}))

	words, err := repository.LoadWords()
	req.NoError(err)
	req.ElementsMatch([]string{"badger", "snake", "mushroom"}, words)
}
