package search

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a failed query
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindTimeout
	KindBackend
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// QueryError is returned by backends that can fail. It is shown inline and
// never ends the session.
type QueryError struct {
	Kind  ErrorKind
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s error for query %q: %v", e.Kind, e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// IsKind reports whether err is a QueryError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == kind
}

// classify maps a transport error onto the error taxonomy
func classify(query string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	kind := KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &QueryError{Kind: kind, Query: query, Err: err}
}
