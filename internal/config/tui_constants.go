package config

// Layout constants.
const (
	// MinColumnWidth is the minimum width for a board column.
	MinColumnWidth = 24

	// NameWidth is the width reserved for the name field.
	NameWidth = 12

	// MinStatusWidth is the narrowest the status field may get.
	MinStatusWidth = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Timestamp layout for the "last updated" line.
const TimestampLayout = "2006-01-02 15:04:05"
