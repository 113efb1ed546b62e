package platform

// Package platform contains OS integration glue: filesystem helpers,
// standard user directories, and opening or revealing files in the system
// file manager.
