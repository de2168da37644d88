package mainloop

import "github.com/jwijenbergh/puregotk/v4/glib"

// GlibPost queues fn on the GLib main loop. Safe from any goroutine.
func GlibPost(fn func()) {
	cb := glib.SourceFunc(func(_ uintptr) bool {
		fn()
		return false
	})
	glib.IdleAdd(&cb, 0)
}
