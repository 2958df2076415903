//go:build linux

// Package x11 provides the X11 display backend on top of xgb and xgbutil.
// It owns the connection, the blank placeholder window and the root cursor,
// and translates core protocol events into platform events.
package x11
