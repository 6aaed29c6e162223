package sim

// Status emojis
const (
	StatusEmojiHappy    = "😸"
	StatusEmojiSleeping = "😴"
	StatusEmojiEating   = "😋"
	StatusEmojiPlaying  = "😹"
	StatusEmojiSad      = "😿"
	StatusEmojiBored    = "🙀"
	StatusEmojiTired    = "😾"
	StatusEmojiSick     = "🤢"
	StatusEmojiDead     = "💀"
)

// Status returns the display emoji for a snapshot. Priority is fixed:
// dead, then sleeping, then the active overlay, then the most pressing
// need, then happy.
func Status(s Snapshot) string {
	if s.Dead {
		return StatusEmojiDead
	}
	if s.Mode == ModeSleeping {
		return StatusEmojiSleeping
	}
	switch s.Overlay {
	case OverlaySad:
		return StatusEmojiSad
	case OverlayEating:
		return StatusEmojiEating
	case OverlayPlaying:
		return StatusEmojiPlaying
	}

	lowest := s.Health
	feeling := StatusEmojiSick
	if s.Sleep < lowest {
		lowest = s.Sleep
		feeling = StatusEmojiTired
	}
	if s.Fun < lowest {
		lowest = s.Fun
		feeling = StatusEmojiBored
	}
	if lowest < 30 {
		return feeling
	}
	return StatusEmojiHappy
}

// StatusLabel returns the emoji with a short text label for the UI.
func StatusLabel(s Snapshot) string {
	switch status := Status(s); status {
	case StatusEmojiDead:
		return status + " Dead"
	case StatusEmojiSleeping:
		return status + " Sleeping"
	case StatusEmojiSad:
		return status + " Sad"
	case StatusEmojiEating:
		return status + " Eating"
	case StatusEmojiPlaying:
		return status + " Playing"
	case StatusEmojiSick:
		return status + " Unwell"
	case StatusEmojiTired:
		return status + " Exhausted"
	case StatusEmojiBored:
		return status + " Bored"
	default:
		return status + " Happy"
	}
}
