package internal

import (
	"encoding/json"
	"testing"
	"time"
)

// MustMarshal encodes input as JSON or fails the test
func MustMarshal(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("could not marshal %+v: %s", input, err)
	}

	return data
}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}
