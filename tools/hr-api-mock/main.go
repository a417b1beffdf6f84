package main

import (
	"encoding/json"
	"log"
	"net/http"
)

// A simple struct to capture the incoming event data
type AttendanceRecordedEvent struct {
	RecordID  string `json:"recordId"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	AreaName  string `json:"areaName"`
}

func attendanceHandler(w http.ResponseWriter, r *http.Request) {
	var event AttendanceRecordedEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	log.Printf("Received %s for UserID: %s on %s (area: %s)", event.Type, event.UserID, event.Date, event.AreaName)
	w.WriteHeader(http.StatusOK)
}

func main() {
	http.HandleFunc("/", attendanceHandler)
	log.Println("Legacy HR API mock server starting on port 8081...")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
