package ws

import (
	"encoding/json"
	"time"
)

const EventVisitorCount = "visitor_count"

type CountEvent struct {
	Type      string `json:"type"`
	Count     int64  `json:"count"`
	Timestamp string `json:"timestamp"`
}

func encodeCount(count int64) ([]byte, error) {
	return json.Marshal(CountEvent{
		Type:      EventVisitorCount,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
