// Package client holds request-shaping helpers shared by gateway clients.
package client

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryBuilder assembles a query string preserving insertion order, which
// keeps outgoing URLs stable and easy to assert on.
type QueryBuilder struct {
	sb      *strings.Builder
	isEmpty bool
}

func NewQueryBuilder() *QueryBuilder {
	q := &QueryBuilder{}
	q.isEmpty = true
	q.sb = &strings.Builder{}
	return q
}

func (q *QueryBuilder) Add(param string, value any) *QueryBuilder {
	amp := ""
	if q.isEmpty {
		q.isEmpty = false
	} else {
		amp = "&"
	}
	q.sb.WriteString(amp + param + "=" + url.QueryEscape(fmt.Sprintf("%v", value)))
	return q
}

func (q *QueryBuilder) String() string {
	return q.sb.String()
}
