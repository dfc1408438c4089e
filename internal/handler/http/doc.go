// Package http implements the web transport of the panel.
//
// It serves the panel page, the embedded script and stylesheet, and the two
// fragment endpoints the script calls. Cross-cutting concerns such as request
// tracing, access logging, response compression, panel sessions, CORS and
// rate limiting are handled here before requests reach the service layer.
package http
