package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconCopy     = "📋"
	IconMusic    = "🎵"
	IconPlay     = "▶"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
	ItemCounterFormat   = "%d/%d"
	FailureLineFormat   = "%s: %s"
)

// Window and layout sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 620

	LogoSize        float32 = 32
	FileRowMinWidth float32 = 400

	URLBoxRows          = 6
	FailureListMaxLines = 6
)

// AppID is the Fyne application identifier, also used for the preferences store
const AppID = "com.ytget.yt-mp3"
