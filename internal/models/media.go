package models

// MediaItem is a single gallery entry embedded on a content row.
// The URL points at blob storage; Type is "image" for everything the
// current site publishes.
type MediaItem struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// MediaList is an ordered gallery stored as a JSON column on the owning
// row rather than a separate table. Order is significant to the client.
type MediaList []MediaItem
