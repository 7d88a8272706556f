package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Client holds the settings the board client and views are built from.
type Client struct {
	BaseURL      string
	Timeout      time.Duration
	Retries      int
	RetryBackoff time.Duration
	Orientation  string
	Refresh      time.Duration
	LogFile      string
	Theme        string
	Debug        bool
}

// Defaults returns the built-in settings.
func Defaults() Client {
	return Client{
		BaseURL:      DefaultBaseURL,
		Timeout:      DefaultTimeout,
		Retries:      DefaultRetries,
		RetryBackoff: DefaultRetryBackoff,
		Orientation:  OrientationColumns,
		Refresh:      DefaultRefresh,
		Theme:        DefaultTheme,
	}
}

// FromEnv returns Defaults overridden by DESTBOARD_* variables and DEBUG.
// Only values that cannot be parsed are errors; call Validate once any
// command line overrides have been applied.
func FromEnv(lookup func(string) (string, bool)) (Client, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	c := Defaults()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get("DESTBOARD_URL"); ok {
		c.BaseURL = v
	}
	if v, ok := get("DESTBOARD_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("invalid DESTBOARD_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v, ok := get("DESTBOARD_RETRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid DESTBOARD_RETRIES: %w", err)
		}
		c.Retries = n
	}
	if v, ok := get("DESTBOARD_RETRY_BACKOFF"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("invalid DESTBOARD_RETRY_BACKOFF: %w", err)
		}
		c.RetryBackoff = d
	}
	if v, ok := get("DESTBOARD_ORIENTATION"); ok {
		c.Orientation = strings.ToLower(v)
	}
	if v, ok := get("DESTBOARD_REFRESH"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("invalid DESTBOARD_REFRESH: %w", err)
		}
		c.Refresh = d
	}
	if v, ok := get("DESTBOARD_LOG"); ok {
		c.LogFile = v
	}
	if v, ok := get("DESTBOARD_THEME"); ok {
		c.Theme = strings.ToLower(v)
	}
	if v, ok := get("DEBUG"); ok {
		if dbg, err := strconv.ParseBool(v); err == nil {
			c.Debug = dbg
		}
	}
	return c, nil
}

// Validate checks that the settings are usable.
func (c Client) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	if c.RetryBackoff < 0 {
		return fmt.Errorf("retry backoff must not be negative")
	}
	if c.Refresh < 0 {
		return fmt.Errorf("refresh interval must not be negative")
	}
	switch c.Orientation {
	case OrientationColumns, OrientationRows:
	default:
		return fmt.Errorf("unknown orientation %q (want %s or %s)", c.Orientation, OrientationColumns, OrientationRows)
	}
	return nil
}
