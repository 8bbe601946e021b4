package isbndb

import "errors"

// ErrNoData indicates a single API call produced no usable payload: a
// non-success HTTP status, or an HTML error page returned where XML was
// expected. It is a lookup miss, not a failure.
var ErrNoData = errors.New("no data returned by the API")
