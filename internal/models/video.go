package models

// Thumbnails holds the thumbnail URLs returned by the metadata lookup, by quality.
type Thumbnails struct {
	Maxres  string `json:"maxres,omitempty"`
	High    string `json:"high,omitempty"`
	Medium  string `json:"medium,omitempty"`
	Default string `json:"default,omitempty"`
}

// VideoMetadata is the display information for an external video.
type VideoMetadata struct {
	VideoID    string     `json:"video_id"`
	Title      string     `json:"title"`
	Thumbnails Thumbnails `json:"thumbnails"`
}
