package platform

// Package platform isolates OS-specific concerns: user directories, asset
// lookup, and opening files in the system file manager.
