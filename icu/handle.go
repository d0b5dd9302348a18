package icu

import (
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/icu4x-go/errors"
	"github.com/wippyai/icu4x-go/resource"
)

// handleState is the release bookkeeping shared between a wrapper and its
// cleanup. It must not point back at the wrapper.
type handleState struct {
	destroy  func(resource.Handle)
	logger   *zap.Logger
	typeName string
	handle   resource.Handle
	released atomic.Bool
}

// release destroys the handle the first time it is called and reports
// whether it did.
func (s *handleState) release() bool {
	if !s.released.CompareAndSwap(false, true) {
		return false
	}
	s.destroy(s.handle)
	return true
}

// owned ties one boundary handle to one wrapper. Close destroys exactly
// once; if the wrapper is dropped without Close, a runtime cleanup does it.
type owned struct {
	state   *handleState
	cleanup runtime.Cleanup
}

// adopt takes ownership of h on behalf of wrapper.
func adopt[T any](wrapper *T, o *owned, env *Env, typeName string, h resource.Handle, destroy func(resource.Handle)) {
	o.state = &handleState{
		destroy:  destroy,
		logger:   env.logger,
		typeName: typeName,
		handle:   h,
	}
	o.cleanup = runtime.AddCleanup(wrapper, func(s *handleState) {
		if s.release() {
			s.logger.Debug("released unreachable handle",
				zap.String("type", s.typeName), zap.Uint32("handle", uint32(s.handle)))
		}
	}, o.state)
}

// live returns the handle, panicking if it was already released.
func (o *owned) live() resource.Handle {
	if o.state.released.Load() {
		panic(errors.UseAfterDestroy(o.state.typeName, uint32(o.state.handle)))
	}
	return o.state.handle
}

// close destroys the handle. A second call reports KindDoubleDestroy and
// does not reach the boundary.
func (o *owned) close() error {
	if !o.state.release() {
		return errors.DoubleDestroy(o.state.typeName, uint32(o.state.handle))
	}
	o.cleanup.Stop()
	return nil
}

// closed reports whether the handle was released.
func (o *owned) closed() bool {
	return o.state.released.Load()
}

// disown gives up the handle without destroying it.
func (o *owned) disown() resource.Handle {
	if !o.state.released.CompareAndSwap(false, true) {
		panic(errors.UseAfterDestroy(o.state.typeName, uint32(o.state.handle)))
	}
	o.cleanup.Stop()
	return o.state.handle
}
