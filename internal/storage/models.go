package storage

import "time"

// Journal entry kinds.
const (
	JournalEarn    = "earn"
	JournalSpend   = "spend"
	JournalUpgrade = "upgrade"
)

type JournalEntry struct {
	ID      int64
	At      time.Time
	Kind    string // earn | spend | upgrade
	Ref     string // task id for earns, item id for spends, plant id for upgrades
	Delta   int
	Balance int // balance after the mutation
}
