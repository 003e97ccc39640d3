// Package timezone centralizes the application's local time handling.
//
// Booking timestamps travel on the wire without a zone offset, so every
// parse, format, and "now" lookup has to happen in one agreed location.
// Configure it with APP_TIMEZONE; it defaults to UTC.
package timezone
