package bridge

import "context"

// Receiver is the inbound callback the host calls to push text into the view.
type Receiver func(text string)

// Host is implemented by the desktop side of the bridge.
//
// A view receives its Host explicitly; a nil Host means the page is not
// hooked up to a desktop app.
type Host interface {
	// SendMessage delivers text from the view to the host.
	SendMessage(ctx context.Context, text string) error

	// SetReceiver installs the callback the host uses to push text back
	// into the view. A later call replaces the earlier receiver.
	SetReceiver(fn Receiver)
}
