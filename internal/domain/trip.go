package domain

// Trip is the journal record written by the trip editor. The leveling engine
// reads these records only to derive statistics; it never mutates them.
// All fields are optional on disk — missing fields contribute nothing.
type Trip struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Country string `json:"country,omitempty"`
	// TotalPhotos is a cached photo count maintained by the editor.
	// When present it is preferred over summing day memories.
	TotalPhotos *int      `json:"totalPhotos,omitempty"`
	Days        []TripDay `json:"days,omitempty"`
}

// TripDay is one day of a trip.
type TripDay struct {
	Date     string   `json:"date,omitempty"`
	Memories []Memory `json:"memories,omitempty"`
}

// Memory is a single photo entry with an optional caption.
type Memory struct {
	URI     string `json:"uri,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// TripKeyPrefix prefixes every persisted trip record key.
const TripKeyPrefix = "trip_"

// TripKey returns the storage key for a trip id.
func TripKey(id string) string {
	return TripKeyPrefix + id
}
