// Package internal hosts the operator-facing debug endpoint: a browsable
// view over the badger meeting store, for local diagnosis only.
package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key       string
	Kind      string
	Timestamp string
	EntityID  string
	Detail    string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves the store browser on localhost. It is gated by
// configuration and never part of the public surface.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "meeting:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), mux)
	}()
}

// mapRow renders one store entry. Key layouts:
//
//	meeting:id:{meetingID}
//	meeting:room:{roomID}
//	meeting:log:{meetingID}:{ts}
//	room:{roomID}
func mapRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Kind:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	switch {
	case len(parts) == 4 && parts[0] == "meeting" && parts[1] == "log":
		row.Kind = "TRANSITION"
		row.EntityID = shorten(parts[2])
		if tsNano, err := strconv.ParseInt(parts[3], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
	case len(parts) == 3 && parts[0] == "meeting":
		row.Kind = "MEETING"
		row.EntityID = shorten(parts[2])
	case len(parts) == 2 && parts[0] == "room":
		row.Kind = "ROOM"
		row.EntityID = shorten(parts[1])
	}

	var decoded map[string]any
	if err := json.Unmarshal(val, &decoded); err == nil {
		pretty := make([]string, 0, len(decoded))
		for k, v := range decoded {
			pretty = append(pretty, fmt.Sprintf("%s=%v", k, v))
		}
		row.Detail = strings.Join(pretty, " ")
	}
	return row
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
