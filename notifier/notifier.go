package notifier

import "sync"

// Chime describes the two-tone alert the admin client renders when a new
// order lands: A5 and C#6 sine waves fading out over half a second.
type Chime struct {
	FreqA    float64 `json:"freqA"`
	FreqB    float64 `json:"freqB"`
	Duration float64 `json:"duration"`
}

// Alert is the notification payload pushed over the admin feed. Playback
// happens client-side; if the browser refuses audio the alert is simply lost,
// which is fine.
type Alert struct {
	Action  string `json:"action"`
	OrderID string `json:"orderId"`
	Chime   Chime  `json:"chime"`
}

func NewOrderAlert(orderID string) Alert {
	return Alert{
		Action:  "notify",
		OrderID: orderID,
		Chime:   Chime{FreqA: 880, FreqB: 1108.73, Duration: 0.5},
	}
}

// maxSeen bounds the dedupe set. Order ids arrive once each in normal
// operation; duplicates only show up within a short relay window, so dropping
// old ids on overflow cannot re-alert anything recent.
const maxSeen = 4096

// Notifier tracks which orders have already produced an alert and each admin
// session's sound preference. Preferences live only as long as the process,
// matching their session-scoped lifetime.
type Notifier struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	muted map[string]bool // sessions that turned sound off; default is on
}

func New() *Notifier {
	return &Notifier{
		seen:  make(map[string]struct{}),
		muted: make(map[string]bool),
	}
}

// NotifyNewOrder reports whether this order id should produce an alert.
// The first caller wins; every later sighting of the same id is a duplicate.
func (n *Notifier) NotifyNewOrder(orderID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, dup := n.seen[orderID]; dup {
		return false
	}
	if len(n.seen) >= maxSeen {
		n.seen = make(map[string]struct{}, maxSeen)
	}
	n.seen[orderID] = struct{}{}
	return true
}

// SoundEnabled reports the session's preference, defaulting to on.
func (n *Notifier) SoundEnabled(session string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.muted[session]
}

// SetSoundEnabled stores the session's preference.
func (n *Notifier) SetSoundEnabled(session string, enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if enabled {
		delete(n.muted, session)
	} else {
		n.muted[session] = true
	}
}
