package translate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestClientTranslate(t *testing.T) {
	// Echoes each text back prefixed with the target language so field
	// mapping is observable.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate", r.URL.Path)

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "en", req.Source)

		if req.Target == "zh" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		translated := make([]string, len(req.Q))
		for i, q := range req.Q {
			translated[i] = req.Target + ":" + q
		}
		_ = json.NewEncoder(w).Encode(translateResponse{TranslatedText: translated})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "en", 5*time.Second, testLogger())

	source := Content{"name": "Pest Control", "title": "Fast & Safe"}
	got, err := client.Translate(context.Background(), source, []string{"ar", "fr", "zh"})
	require.NoError(t, err)

	// zh failed and is omitted; the other targets come back field by field.
	require.Len(t, got, 2)
	assert.Equal(t, Content{"name": "ar:Pest Control", "title": "ar:Fast & Safe"}, got["ar"])
	assert.Equal(t, Content{"name": "fr:Pest Control", "title": "fr:Fast & Safe"}, got["fr"])
	_, ok := got["zh"]
	assert.False(t, ok)
}

func TestClientTranslateAllFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "en", 5*time.Second, testLogger())

	got, err := client.Translate(context.Background(), Content{"name": "Plumbing"}, []string{"ar", "fr"})
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestClientTranslateEmptyInput(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "", "en", time.Second, testLogger())

	got, err := client.Translate(context.Background(), Content{}, []string{"ar"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = client.Translate(context.Background(), Content{"name": "x"}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStaticTranslator(t *testing.T) {
	static := Static{ByLanguage: map[string]Content{
		"ar": {"name": "مكافحة الآفات"},
	}}

	got, err := static.Translate(context.Background(), Content{"name": "Pest Control"}, []string{"ar", "fr"})
	require.NoError(t, err)
	assert.Equal(t, Content{"name": "مكافحة الآفات"}, got["ar"])
	_, ok := got["fr"]
	assert.False(t, ok)
}
