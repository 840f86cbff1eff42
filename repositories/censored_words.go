package repositories

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const blacklistPrefix = "blacklist:"

// CensoredWordRepository keeps the moderation dictionary.
// Words live in the keys, values are empty.
type CensoredWordRepository struct {
	db *badger.DB
}

func NewCensoredWordRepository(db *badger.DB) CensoredWordRepository {
	return CensoredWordRepository{db: db}
}

// Seed adds words to the dictionary. Blank words are ignored, existing ones are kept.
func (r CensoredWordRepository) Seed(words []string) error {
	wb := r.db.NewWriteBatch()
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if err := wb.Set([]byte(blacklistPrefix+word), nil); err != nil {
			wb.Cancel()
			return err
		}
	}
	return wb.Flush()
}

func (r CensoredWordRepository) LoadWords() ([]string, error) {
	var words []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(blacklistPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return words, err
}
