package ml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClassifierPredictIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["query"] != "send 500 to Ramesh" {
			t.Errorf("unexpected query: %q", req["query"])
		}

		json.NewEncoder(w).Encode(Prediction{
			Query:  req["query"],
			Intent: "fund_transfer",
			Entities: []Entity{
				{Text: "Ramesh", Label: "B-PERSON"},
				{Text: "500", Label: "B-AMOUNT"},
			},
		})
	}))
	defer srv.Close()

	client := NewHTTPClassifier(srv.URL, time.Second)
	pred, err := client.PredictIntent(context.Background(), "send 500 to Ramesh")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if pred.Intent != "fund_transfer" {
		t.Fatalf("unexpected intent: %q", pred.Intent)
	}
	if len(pred.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(pred.Entities))
	}
	if pred.Entities[0].Label != "B-PERSON" || pred.Entities[0].Text != "Ramesh" {
		t.Fatalf("unexpected entity: %+v", pred.Entities[0])
	}
}

func TestHTTPClassifierNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClassifier(srv.URL, time.Second)
	if _, err := client.PredictIntent(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestHTTPClassifierUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewHTTPClassifier(srv.URL, time.Second)
	if _, err := client.PredictIntent(context.Background(), "hello"); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestHTTPFaqEngineAskFaq(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/faq-answer" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["question"] != "how do I block my card" {
			t.Errorf("unexpected question: %q", req["question"])
		}

		json.NewEncoder(w).Encode(FaqAnswer{Answer: "Call 1800-000-000.", Confidence: 0.92})
	}))
	defer srv.Close()

	client := NewHTTPFaqEngine(srv.URL, time.Second)
	answer, err := client.AskFaq(context.Background(), "how do I block my card")
	if err != nil {
		t.Fatalf("ask faq: %v", err)
	}

	if answer.Answer != "Call 1800-000-000." {
		t.Fatalf("unexpected answer: %q", answer.Answer)
	}
	if answer.Confidence != 0.92 {
		t.Fatalf("unexpected confidence: %v", answer.Confidence)
	}
}

func TestHTTPFaqEngineBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewHTTPFaqEngine(srv.URL, time.Second)
	if _, err := client.AskFaq(context.Background(), "hello"); err == nil {
		t.Fatalf("expected decode error")
	}
}
