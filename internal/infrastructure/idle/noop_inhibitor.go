package idle

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
)

var _ port.SleepInhibitor = (*NoopInhibitor)(nil)

// NoopInhibitor hands out tokens without asking the host for anything.
// It backs configurations that turn sleep inhibition off.
type NoopInhibitor struct {
	next atomic.Uint64
}

// NewNoopInhibitor returns an inhibitor that never touches the platform.
func NewNoopInhibitor() *NoopInhibitor {
	return &NoopInhibitor{}
}

func (n *NoopInhibitor) Inhibit(context.Context, string) (entity.SleepToken, error) {
	return entity.SleepToken("noop:" + strconv.FormatUint(n.next.Add(1), 10)), nil
}

func (n *NoopInhibitor) Uninhibit(context.Context, entity.SleepToken) error {
	return nil
}

func (n *NoopInhibitor) Close() error {
	return nil
}
