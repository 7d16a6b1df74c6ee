package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the context's span to an error so failures can be
// correlated with the run that produced them.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
