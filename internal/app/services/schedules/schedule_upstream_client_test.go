package schedules

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/config"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
)

func newUpstreamTestClient(baseURL string) ScheduleUpstreamClient {
	return NewScheduleUpstreamClient(config.Schedule{
		UpstreamBaseUrl:           baseURL,
		UpstreamReferer:           "https://rasp.dmami.ru/",
		UpstreamUserAgent:         "MospolyRasp/1.0",
		UpstreamTimeoutInSeconds:  2,
		UpstreamRequestsPerSecond: 100,
	})
}

func TestFetchScheduleSuccess(t *testing.T) {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		json.NewEncoder(w).Encode(scheduleResponse("221-321"))
	}))
	defer server.Close()

	client := newUpstreamTestClient(server.URL)
	response, err := client.FetchSchedule(context.Background(), "221-321", constvars.DefaultSession)

	require.NoError(t, err)
	assert.Equal(t, constvars.ScheduleStatusOK, response.Status)
	assert.Equal(t, "221-321", response.Group.Title)

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/site/group", gotRequest.URL.Path)
	assert.Equal(t, "221-321", gotRequest.URL.Query().Get("group"))
	assert.Equal(t, constvars.DefaultSession, gotRequest.URL.Query().Get("session"))
	assert.Equal(t, "https://rasp.dmami.ru/", gotRequest.Header.Get(constvars.HeaderReferer))
	assert.Equal(t, "MospolyRasp/1.0", gotRequest.Header.Get(constvars.HeaderUserAgent))
}

func TestFetchScheduleAcceptsAnySuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		json.NewEncoder(w).Encode(scheduleResponse("221-321"))
	}))
	defer server.Close()

	response, err := newUpstreamTestClient(server.URL).FetchSchedule(context.Background(), "221-321", constvars.DefaultSession)

	require.NoError(t, err, "any 2xx status carries a decodable envelope")
	assert.Equal(t, "221-321", response.Group.Title)
}

func TestFetchScheduleHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newUpstreamTestClient(server.URL).FetchSchedule(context.Background(), "221-321", constvars.DefaultSession)

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestFetchSchedulePayloadStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error"})
	}))
	defer server.Close()

	_, err := newUpstreamTestClient(server.URL).FetchSchedule(context.Background(), "000-000", constvars.DefaultSession)

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientGroupNotFound, customErr.ClientMessage)
}

func TestFetchScheduleDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	_, err := newUpstreamTestClient(server.URL).FetchSchedule(context.Background(), "221-321", constvars.DefaultSession)

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestFetchScheduleTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newUpstreamTestClient(server.URL).FetchSchedule(context.Background(), "221-321", constvars.DefaultSession)

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	assert.False(t, exceptions.IsScheduleCacheMiss(err))
}
