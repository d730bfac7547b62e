package platform

// Package platform maps URLs to source platforms and to the immutable option
// profiles the extraction engine is driven with: format selection, output
// naming, headers, and per-platform special handling. It also owns URL
// well-formedness checks and filename sanitization.
