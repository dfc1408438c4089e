// Package view renders the panel page and its fragments.
//
// Markup lives in embedded html/template files and is exposed as
// templ.Component values, so every string coming from the backend is escaped
// by the template engine. The text helpers in format.go are shared with the
// terminal panel so both front ends print identical numbers and messages.
package view
