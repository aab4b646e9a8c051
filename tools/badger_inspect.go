package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Read-only dump of the meeting store. Safe to run against a live
// database thanks to the lock guard bypass.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "meeting:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Timestamp", "Entity ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				key := string(item.Key())
				kind, timestamp, entityID := describeKey(key)

				detail := "size: " + strconv.Itoa(len(v)) + " bytes"
				var decoded map[string]any
				if err := json.Unmarshal(v, &decoded); err == nil {
					fields := make([]string, 0, len(decoded))
					for k, val := range decoded {
						fields = append(fields, fmt.Sprintf("%s=%v", k, val))
					}
					detail = strings.Join(fields, " ")
				}

				table.Append([]string{key, kind, timestamp, entityID, detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// describeKey classifies a store key:
//
//	meeting:id:{meetingID}
//	meeting:room:{roomID}
//	meeting:log:{meetingID}:{ts}
//	room:{roomID}
func describeKey(key string) (kind, timestamp, entityID string) {
	kind = "RAW"
	timestamp = "--:--:--"
	entityID = "--------"

	parts := strings.Split(key, ":")
	switch {
	case len(parts) == 4 && parts[0] == "meeting" && parts[1] == "log":
		kind = "TRANSITION"
		entityID = shorten(parts[2])
		if tsNano, err := strconv.ParseInt(parts[3], 10, 64); err == nil {
			timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
	case len(parts) == 3 && parts[0] == "meeting":
		kind = "MEETING"
		entityID = shorten(parts[2])
	case len(parts) == 2 && parts[0] == "room":
		kind = "ROOM"
		entityID = shorten(parts[1])
	}
	return kind, timestamp, entityID
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
