//go:build darwin

package idle

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <stdlib.h>
#include <IOKit/pwr_mgt/IOPMLib.h>
#include <CoreFoundation/CoreFoundation.h>

static IOReturn glidePreventDisplaySleep(const char *reason, IOPMAssertionID *assertionID) {
	CFStringRef name = CFStringCreateWithCString(kCFAllocatorDefault, reason, kCFStringEncodingUTF8);
	IOReturn result = IOPMAssertionCreateWithName(
		kIOPMAssertionTypePreventUserIdleDisplaySleep,
		kIOPMAssertionLevelOn,
		name,
		assertionID
	);
	CFRelease(name);
	return result;
}

static IOReturn glideReleaseAssertion(IOPMAssertionID assertionID) {
	return IOPMAssertionRelease(assertionID);
}
*/
import "C"

import (
	"context"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
)

var _ port.SleepInhibitor = (*IOKitInhibitor)(nil)

// IOKitInhibitor prevents display sleep with IOKit power assertions.
// The token is the assertion id.
type IOKitInhibitor struct {
	mu         syncutil.Mutex
	assertions map[entity.SleepToken]C.IOPMAssertionID
}

// NewIOKitInhibitor returns an inhibitor holding no assertions.
func NewIOKitInhibitor(context.Context) *IOKitInhibitor {
	return &IOKitInhibitor{assertions: make(map[entity.SleepToken]C.IOPMAssertionID)}
}

func (i *IOKitInhibitor) Inhibit(ctx context.Context, reason string) (entity.SleepToken, error) {
	log := logging.FromContext(ctx)

	cReason := C.CString(reason)
	defer C.free(unsafe.Pointer(cReason))

	var id C.IOPMAssertionID
	if result := C.glidePreventDisplaySleep(cReason, &id); result != C.kIOReturnSuccess {
		return "", fmt.Errorf("create display sleep assertion: IOReturn=%d", int(result))
	}

	token := entity.SleepToken(strconv.FormatUint(uint64(id), 10))
	i.mu.Lock()
	i.assertions[token] = id
	i.mu.Unlock()

	log.Info().Str("assertion", string(token)).Str("reason", reason).Msg("idle inhibitor: display sleep assertion created")
	return token, nil
}

func (i *IOKitInhibitor) Uninhibit(ctx context.Context, token entity.SleepToken) error {
	i.mu.Lock()
	id, ok := i.assertions[token]
	delete(i.assertions, token)
	i.mu.Unlock()

	if !ok {
		return nil
	}
	if result := C.glideReleaseAssertion(id); result != C.kIOReturnSuccess {
		return fmt.Errorf("release display sleep assertion %s: IOReturn=%d", token, int(result))
	}
	logging.FromContext(ctx).Info().Str("assertion", string(token)).Msg("idle inhibitor: display sleep assertion released")
	return nil
}

// Close releases any assertion still held.
func (i *IOKitInhibitor) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	for token, id := range i.assertions {
		C.glideReleaseAssertion(id)
		delete(i.assertions, token)
	}
	return nil
}
