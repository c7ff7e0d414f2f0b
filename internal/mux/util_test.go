package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"headsup-analyzer/internal/duel"
	"headsup-analyzer/pkg/deck"
	"headsup-analyzer/pkg/equity"
	"headsup-analyzer/pkg/poker"
	"headsup-analyzer/pkg/preflop"
	"headsup-analyzer/pkg/rangestore"
)

func newTestMux(t *testing.T) *Mux {
	t.Helper()
	store, err := rangestore.New([]rangestore.Record{
		{Name: "BTN open", Action: "open", Me: "btn", Opponent: "none", Hands: "22+,A2s+,K9s+,ATo+"},
		{Name: "CO open", Action: "open", Me: "co", Opponent: "none", Hands: "55+,A8s+,ATo+"},
		{Name: "BB call vs BTN", Action: "call", Me: "bb", Opponent: "btn", Hands: "22-99,A2s-AJs,A2o-AKo"},
		{Name: "IP 3bet call", Action: "3betcall", Me: "ip", Opponent: "oop", Hands: "77-JJ,AJs,AQs,AQo"},
	})
	require.NoError(t, err)

	return NewMux("test", store, &equity.Simulator{Iterations: 200, Workers: 2, Seed: 3})
}

func Test_errorStatus(t *testing.T) {
	a := assert.New(t)

	_, err := deck.ParseHand("Zz")
	a.Equal(http.StatusBadRequest, errorStatus(err))

	_, err = preflop.ParsePosition("nowhere")
	a.Equal(http.StatusBadRequest, errorStatus(err))

	_, err = poker.Classify(deck.MustParseHand("AhKh").Cards)
	a.Equal(http.StatusBadRequest, errorStatus(err))

	a.Equal(http.StatusBadRequest, errorStatus(UserError("nope")))
	a.Equal(http.StatusBadRequest, errorStatus(fmt.Errorf("wrapped: %w", duel.ErrInvalidHole)))
	a.Equal(http.StatusBadRequest, errorStatus(equity.ErrEmptyRange))
	a.Equal(http.StatusNotFound, errorStatus(&rangestore.RangeNotFoundError{}))
	a.Equal(http.StatusInternalServerError, errorStatus(errors.New("boom")))
}

func Test_requestIDMiddleware(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	resp := assertGetWithResp(t, ts, "/health", nil, 200)
	id := resp.Header.Get(requestIDHeader)
	assert.Len(t, id, 36)
	_ = resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(requestIDHeader, id)
	resp = assertDo(t, req, nil, 200)
	assert.Equal(t, id, resp.Header.Get(requestIDHeader))
	_ = resp.Body.Close()
}

func Test_decodeRequest(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/classify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	var errObj errorResponse
	assertDo(t, req, &errObj, http.StatusUnsupportedMediaType)
	assert.Equal(t, "Unsupported Media Type", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/classify", "{", &errObj, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}

	b, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}

	// leave the body readable for callers that close it
	resp.Body = io.NopCloser(bytes.NewReader(b))

	if statusCode != resp.StatusCode {
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return resp
	}

	if respObj != nil {
		if err := json.Unmarshal(b, respObj); err != nil {
			t.Error(err)
		}
	}

	return resp
}

func assertGetWithResp(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}

	return assertDo(t, req, respObj, statusCode)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()
	resp := assertGetWithResp(t, ts, path, respObj, statusCode)
	_ = resp.Body.Close()
}

func assertPostWithResp(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()
	resp := assertPostWithResp(t, ts, path, payload, respObj, statusCode)
	_ = resp.Body.Close()
}
