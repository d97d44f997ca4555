// Package httputil fetches remote datasets.
//
// A dataset path that starts with http:// or https:// is downloaded by
// [Client.Fetch] instead of being read from disk. Transient failures are
// retried:
//
//   - network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// [Retry] implements the backoff and only retries errors wrapped in
// [RetryableError]. Defaults: 3 attempts, 1 second initial delay doubling
// after each failure, 30 second request timeout.
package httputil
