package logs

// Span identifies one unit of work, e.g. a single search run. The current
// span travels in the context and every log record carries it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
