// Package requestid assigns every HTTP request an identifier that is
// echoed in the X-Request-ID response header, stored on the request
// context and added to log records through LoggerExtractor.
package requestid
