package internal

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	defaultPrefix = "im:"
	maxRows       = 500
)

// InspectRow is one badger entry as shown by the store inspector.
type InspectRow struct {
	Key        string `json:"key"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
	EntityID   string `json:"entityId"`
	Conference string `json:"conference"`
	Detail     string `json:"detail"`
}

type RowMapper func(key string, val []byte) InspectRow

type PageData struct {
	Prefix string       `json:"prefix"`
	Items  []InspectRow `json:"items"`
}

// StoreInspector lists the badger entries under ?prefix= (instant messages by default).
// It is meant for officers debugging a live hearing and never returns values.
func StoreInspector(db *badger.DB, mapper RowMapper) http.Handler {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = defaultPrefix
		}
		data := PageData{Prefix: prefix, Items: []InspectRow{}}

		err := db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.PrefetchValues = false
			it := txn.NewIterator(opts)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)) && len(data.Items) < maxRows; it.Next() {
				item := it.Item()
				data.Items = append(data.Items, mapper(string(item.KeyCopy(nil)), make([]byte, item.ValueSize())))
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(data)
	})
}

// DefaultMapper understands im:{conference}:{unix nano}:{message id} keys.
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:        key,
		Type:       "RAW",
		Timestamp:  "--:--:--",
		EntityID:   "--------",
		Conference: "-",
		Detail:     "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
	if len(parts) > 0 {
		row.Type = strings.ToUpper(parts[0])
	}

	if len(parts) >= 4 {
		row.Conference = parts[1]
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
		row.EntityID = parts[3]
		if len(row.EntityID) > 8 {
			row.EntityID = row.EntityID[:8]
		}
	}
	return row
}
