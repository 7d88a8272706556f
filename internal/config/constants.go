package config

import "time"

// Service defaults.
const (
	DefaultBaseURL      = "http://127.0.0.1:8000"
	DefaultTimeout      = 10 * time.Second
	DefaultRetries      = 0
	DefaultRetryBackoff = 500 * time.Millisecond
	DefaultRefresh      = time.Duration(0) // auto-refresh disabled
)

// Board orientations as returned by the server.
const (
	OrientationColumns = "columns" // [column][row]
	OrientationRows    = "rows"    // [row][column], transposed on load
)

// User-facing failure notices.
const (
	MsgFetchFailed  = "failed to fetch"
	MsgUpdateFailed = "failed to update"
)

// Application settings.
const (
	AppName      = "destboard"
	LogFileName  = "destboard.log"
	Title        = "Destination Board"
	DefaultTheme = "default"
)
