package model

// Package model defines domain data structures used across the app: puzzle
// levels, saved progress, and gallery memories. Structures are designed for
// direct binding in the UI and for round-tripping through the storage layer.
