package errx

import (
	"net/http"
)

// WrapRedis maps a Redis failure to Error. Callers handle redis.Nil themselves,
// since a missing key is a cache miss rather than a failure.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, RedisErrorMessage)
}
