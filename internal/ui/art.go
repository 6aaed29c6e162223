package ui

import "tama/internal/sim"

// Screen region occupied by the pet art, used for hover detection. The art
// is always rendered starting on this row of the layout.
const (
	petArtTop    = 2
	petArtHeight = 4
	petArtWidth  = 22
)

// petArt holds the sprite for each mode/overlay combination.
var petArt = map[sim.Overlay]string{
	sim.OverlayNone: `
    /\_/\
   ( o.o )
    > ^ <
`,
	sim.OverlayEating: `
    /\_/\
   ( o.o )  🍖
    >*nom*<
`,
	sim.OverlayPlaying: `
    /\_/\    🎾
   ( ^o^ )
    > ^ <  *boing*
`,
	sim.OverlaySad: `
    /\_/\
   ( ;_; )
    > ~ <
`,
}

var sleepingArt = `
    /\_/\   z
   ( -.- )  z
    > ^ <  z
`

var deadArt = `
    /\_/\
   ( x.x )
    > _ <
`

// Art picks the sprite for a snapshot, honoring the display priority:
// dead, sleeping, overlay, idle.
func Art(s sim.Snapshot) string {
	if s.Dead {
		return deadArt
	}
	if s.Mode == sim.ModeSleeping {
		return sleepingArt
	}
	if art, ok := petArt[s.Overlay]; ok {
		return art
	}
	return petArt[sim.OverlayNone]
}

// overPet reports whether terminal cell (x, y) falls on the pet art.
func overPet(x, y int) bool {
	return y >= petArtTop && y < petArtTop+petArtHeight && x >= 0 && x < petArtWidth
}
