package dto

import "time"

type EnqueueInput struct {
	Title       string
	Description string
	Category    string
	PhotoName   string
	Photo       []byte
	Lat         float64
	Lng         float64
}

type EntryOutput struct {
	ID          string
	Title       string
	Description string
	Category    string
	PhotoName   string
	Status      string
	Lat         float64
	Lng         float64
	EnqueuedAt  time.Time
}

// SyncOutput summarizes one drain pass.
type SyncOutput struct {
	Attempted int
	Synced    int
	Remaining int
}
