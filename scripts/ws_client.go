// Package main runs a demo WebSocket client for the solve stream: it
// sends a small exact instance and prints each incumbent frame as the
// search improves, then the final result.
package main

import (
	"encoding/json"
	"log"
	"net/url"
	"os"

	"github.com/gorilla/websocket"
)

type streamFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	u := url.URL{Scheme: "ws", Host: "localhost:" + port, Path: "/v1/solve/stream"}
	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer func() { _ = c.Close() }()

	req := map[string]any{
		"algorithm": "brute-force",
		"unit":      "km",
		"places": []map[string]any{
			{"name": "New York, NY", "lat": 40.7128, "lng": -74.0060},
			{"name": "Los Angeles, CA", "lat": 34.0522, "lng": -118.2437},
			{"name": "Chicago, IL", "lat": 41.8781, "lng": -87.6298},
			{"name": "Houston, TX", "lat": 29.7604, "lng": -95.3698},
			{"name": "Phoenix, AZ", "lat": 33.4484, "lng": -112.0740},
			{"name": "Denver, CO", "lat": 39.7392, "lng": -104.9903},
		},
	}
	if err := c.WriteJSON(req); err != nil {
		log.Fatal(err)
	}

	for {
		var f streamFrame
		if err := c.ReadJSON(&f); err != nil {
			return
		}
		log.Printf("WS <- %s: %s", f.Type, string(f.Payload))
		if f.Type == "result" || f.Type == "error" {
			return
		}
	}
}
