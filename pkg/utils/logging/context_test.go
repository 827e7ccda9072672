package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

func TestCtxRequestID(t *testing.T) {
	t.Run("new request ID is generated once", func(t *testing.T) {
		ctx := context.Background()
		id1, ctx := logging.CtxRequestID(ctx)
		gt.V(t, id1.String()).NotEqual("")

		id2, _ := logging.CtxRequestID(ctx)
		gt.V(t, id2).Equal(id1)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("without time func returns wall clock", func(t *testing.T) {
		before := time.Now()
		got := logging.CtxTime(context.Background())
		gt.True(t, !got.Before(before))
	})

	t.Run("with time func returns pinned time", func(t *testing.T) {
		pinned := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return pinned })
		gt.V(t, logging.CtxTime(ctx)).Equal(pinned)
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("From returns default logger when not set", func(t *testing.T) {
		gt.V(t, logging.From(context.Background())).Equal(logging.Default())
	})

	t.Run("From returns logger from context", func(t *testing.T) {
		logger := slog.Default().With("test", "value")
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})
}

func TestInheritContextValues(t *testing.T) {
	pinned := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	src := context.Background()
	reqID, src := logging.CtxRequestID(src)
	src = logging.CtxWithTime(src, func() time.Time { return pinned })

	dst := logging.InheritContextValues(context.Background(), src)

	inheritedID, _ := logging.CtxRequestID(dst)
	gt.V(t, inheritedID).Equal(reqID)
	gt.V(t, logging.CtxTime(dst)).Equal(pinned)
}
