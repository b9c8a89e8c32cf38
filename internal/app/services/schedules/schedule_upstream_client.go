package schedules

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/config"
	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
)

type scheduleUpstreamClient struct {
	BaseUrl    string
	Referer    string
	UserAgent  string
	Timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewScheduleUpstreamClient(scheduleConfig config.Schedule) ScheduleUpstreamClient {
	timeout := time.Duration(scheduleConfig.UpstreamTimeoutInSeconds) * time.Second
	return &scheduleUpstreamClient{
		BaseUrl:    scheduleConfig.UpstreamBaseUrl,
		Referer:    scheduleConfig.UpstreamReferer,
		UserAgent:  scheduleConfig.UpstreamUserAgent,
		Timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(scheduleConfig.UpstreamRequestsPerSecond), scheduleConfig.UpstreamRequestsPerSecond),
	}
}

func (c *scheduleUpstreamClient) FetchSchedule(ctx context.Context, group, session string) (*models.ScheduleResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrUpstreamTransport(err)
	}

	endpoint := fmt.Sprintf(
		"%s/site/group?group=%s&session=%s",
		c.BaseUrl,
		url.QueryEscape(group),
		url.QueryEscape(session),
	)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderReferer, c.Referer)
	req.Header.Set(constvars.HeaderUserAgent, c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrUpstreamTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode)
	}

	var response models.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err)
	}

	if response.Status != constvars.ScheduleStatusOK {
		return nil, exceptions.ErrUpstreamPayloadStatus(response.Status)
	}

	return &response, nil
}
