// Package server holds the HTTP server configuration and constants.
//
// The serve command starts the Fiber application; this package only defines
// its settings: the listen port, the API key, how long the catalog snapshot is
// cached, and whether the catalog is read from the JSON file or the database.
package server
