package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	// Configuration
	url := "http://localhost:8080/api/v1/location/validate"
	contentType := "application/json"

	numClients := 5000
	requestsPerClient := 2
	totalRequests := numClients * requestsPerClient
	concurrency := 50 // Number of concurrent requests to avoid local port exhaustion

	fmt.Printf("Starting load test: %d clients (%d requests each) to %s with concurrency %d\n", numClients, requestsPerClient, url, concurrency)

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency) // Semaphore to limit concurrency

	var successCount int64
	var failCount int64

	startTime := time.Now()

	// Inside the Oficina Neuquén polygon, so the validator takes the
	// polygon fast path.
	payload := []byte(`{"latitude": -38.9516, "longitude": -68.0591}`)

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		sem <- struct{}{} // Acquire token

		go func() {
			defer wg.Done()
			defer func() { <-sem }() // Release token

			for j := 0; j < requestsPerClient; j++ {
				resp, err := http.Post(url, contentType, bytes.NewBuffer(payload))
				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				if resp.StatusCode >= 200 && resp.StatusCode < 300 {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
				resp.Body.Close()
			}
		}()
	}

	wg.Wait()
	duration := time.Since(startTime)

	fmt.Println("\n--- Load Test Results ---")
	fmt.Printf("Total Duration: %v\n", duration)
	fmt.Printf("Total Requests: %d\n", totalRequests)
	fmt.Printf("Successful:     %d\n", successCount)
	fmt.Printf("Failed:         %d\n", failCount)
	fmt.Printf("Requests/Sec:   %.2f\n", float64(totalRequests)/duration.Seconds())
}
