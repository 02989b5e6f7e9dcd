// Package msgs defines the bubbletea messages shared by the practice UI.
package msgs

import "time"

// FlashMsg shows a short status line under the console.
type FlashMsg struct {
	Text string
	At   time.Time
}

// FlashExpiredMsg clears a flash shown at At, unless a newer one replaced it.
type FlashExpiredMsg struct {
	At time.Time
}
