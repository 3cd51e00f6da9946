package app

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegram struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeTelegram) SendMessage(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeTelegram) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.text)
	}
	return out
}

type apiCall struct {
	fromDate int64
}

// fakeAPI replays a queue of results, repeating the last one.
type fakeAPI struct {
	results []apiResult
	calls   []apiCall
}

type apiResult struct {
	payload any
	err     error
	panic   string
}

func (f *fakeAPI) HomeworkStatuses(_ context.Context, fromDate int64) (any, error) {
	f.calls = append(f.calls, apiCall{fromDate: fromDate})
	if len(f.results) == 0 {
		return nil, errors.New("no result configured")
	}
	r := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	if r.panic != "" {
		panic(r.panic)
	}
	return r.payload, r.err
}

func jsonPayload(s string) any {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		panic(err)
	}
	return v
}

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}
