package isolate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/bb2gitea/pkg/utils/isolate"
)

func TestCall_ReturnsHandlerError(t *testing.T) {
	want := errors.New("boom")
	err := isolate.Call(context.Background(), func(ctx context.Context) error {
		return want
	})
	gt.V(t, errors.Is(err, want)).Equal(true)
}

func TestCall_Success(t *testing.T) {
	called := false
	err := isolate.Call(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	gt.NoError(t, err)
	gt.V(t, called).Equal(true)
}

func TestCall_RecoversPanic(t *testing.T) {
	err := isolate.Call(context.Background(), func(ctx context.Context) error {
		panic("unexpected")
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("panic in isolated call")
}

func TestCall_PassesContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "value")

	var got any
	err := isolate.Call(ctx, func(ctx context.Context) error {
		got = ctx.Value(ctxKey{})
		return nil
	})
	gt.NoError(t, err)
	gt.Equal(t, got, any("value"))
}
