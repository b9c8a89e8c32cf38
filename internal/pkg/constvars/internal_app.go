package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	CacheControlFresh      = "s-maxage=300, stale-while-revalidate=86400"
	CacheControlStaleError = "stale-if-error=86400"
)
