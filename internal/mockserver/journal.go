package mockserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const journalLimit = 1000

// LoggedRequest is one entry in the request journal.
type LoggedRequest struct {
	ID         string         `json:"id"`
	Request    RequestSummary `json:"request"`
	WasMatched bool           `json:"wasMatched"`
	StubID     string         `json:"stubMappingId,omitempty"`
}

type RequestSummary struct {
	Method     string    `json:"method"`
	URL        string    `json:"url"`
	Body       string    `json:"body,omitempty"`
	LoggedDate time.Time `json:"loggedDate"`
}

// Journal keeps the most recent requests the stub server received.
type Journal struct {
	mu       sync.Mutex
	requests []LoggedRequest
}

func (j *Journal) Record(req LoggedRequest) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	j.requests = append(j.requests, req)
	if len(j.requests) > journalLimit {
		j.requests = j.requests[len(j.requests)-journalLimit:]
	}
}

// Requests returns the journal newest first.
func (j *Journal) Requests() []LoggedRequest {
	j.mu.Lock()
	defer j.mu.Unlock()

	list := make([]LoggedRequest, len(j.requests))
	for i, r := range j.requests {
		list[len(list)-1-i] = r
	}
	return list
}

func (j *Journal) Unmatched() []LoggedRequest {
	var list []LoggedRequest
	for _, r := range j.Requests() {
		if !r.WasMatched {
			list = append(list, r)
		}
	}
	return list
}

func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.requests = nil
}
