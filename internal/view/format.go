package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/app"
)

// FormatFixed6 formats v in fixed-point notation with exactly six decimals.
func FormatFixed6(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// JoinSelected joins the selected assets with ", ".
func JoinSelected(selected []string) string {
	return strings.Join(selected, ", ")
}

// IndentPlaintext pretty-prints a JSON value with two-space indentation,
// keeping object key order. Values that are not valid JSON are returned
// unchanged.
func IndentPlaintext(plaintext json.RawMessage) string {
	if len(bytes.TrimSpace(plaintext)) == 0 {
		return "null"
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, plaintext, "", "  "); err != nil {
		return string(plaintext)
	}
	return buf.String()
}

// DecryptingMessage is the status line shown while jobID is being decrypted.
func DecryptingMessage(jobID string) string {
	return fmt.Sprintf(app.MsgDecryptingFormat, jobID)
}

// SubmitErrorParts splits a failed submission into its message prefix and
// detail.
func SubmitErrorParts(err error) (prefix, detail string) {
	var (
		schemaErr *adapter.SchemaError
		serverErr *adapter.ServerError
	)
	switch {
	case errors.As(err, &schemaErr):
		return app.MsgUnexpectedResponsePrefix, schemaErr.Body
	case errors.As(err, &serverErr):
		return app.MsgServerErrorPrefix, serverErr.Message
	default:
		return app.MsgFetchErrorPrefix, err.Error()
	}
}

// DecryptErrorParts splits a failed decryption into its message prefix and
// detail.
func DecryptErrorParts(err error) (prefix, detail string) {
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		return app.MsgServerErrorPrefix, serverErr.Message
	}
	return app.MsgDecryptionFailedPrefix, err.Error()
}

// SubmitErrorMessage renders a failed submission as one line of text.
func SubmitErrorMessage(err error) string {
	prefix, detail := SubmitErrorParts(err)
	return prefix + detail
}

// DecryptErrorMessage renders a failed decryption as one line of text.
func DecryptErrorMessage(err error) string {
	prefix, detail := DecryptErrorParts(err)
	return prefix + detail
}
