package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPause   = "⏸"
	IconStar    = "★"
	IconStarDim = "☆"
	IconClose   = "×"
	IconFolder  = "📁"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Board sizing
const (
	BoardSide float32 = 440
)

// Gallery sizing
const (
	ThumbnailWidth  = 180
	ThumbnailHeight = 180
	PreviewMaxSide  = 480
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// StarRatingMax is the number of star slots drawn in HUDs and dialogs.
const StarRatingMax = 3
