package main

// Register the X11 backend.
import _ "github.com/mj1618/zwm/internal/platform/x11"
