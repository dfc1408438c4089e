package view

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/MKhiriev/go-portfolio-panel/models"
	"github.com/a-h/templ"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Static returns the embedded panel script and stylesheet, rooted so that
// "panel.js" and "panel.css" resolve directly.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

type pageData struct {
	BuildLines []string
}

type resultData struct {
	Selected       string
	ExpectedReturn string
	Risk           string
	Method         string
	JobID          string
	CiphertextHex  string
	NonceHex       string
}

type warningData struct {
	Label string
	Text  string
}

// Page is the full panel document.
func Page(buildInfo models.AppBuildInfo) templ.Component {
	return render("page", pageData{BuildLines: buildInfo.Lines()})
}

// OptimizationResult renders a successful optimization. The decrypt control
// carries the job id in its data-job-id attribute.
func OptimizationResult(result models.OptimizationResult) templ.Component {
	return render("result", resultData{
		Selected:       JoinSelected(result.Selected),
		ExpectedReturn: FormatFixed6(result.ExpectedReturn),
		Risk:           FormatFixed6(result.Risk),
		Method:         result.Method,
		JobID:          result.JobID,
		CiphertextHex:  result.CiphertextHex,
		NonceHex:       result.NonceHex,
	})
}

// SubmitError renders a failed submission as a warning line.
func SubmitError(err error) templ.Component {
	return warning(SubmitErrorParts(err))
}

// Decrypting renders the status line of a running decryption.
func Decrypting(jobID string) templ.Component {
	return render("status", DecryptingMessage(jobID))
}

// Decrypted renders the plaintext of a decryption, indented.
func Decrypted(result models.DecryptionResult) templ.Component {
	return render("decrypted", IndentPlaintext(result.Plaintext))
}

// DecryptError renders a failed decryption as a warning line.
func DecryptError(err error) templ.Component {
	return warning(DecryptErrorParts(err))
}

// Group renders components one after another.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func warning(prefix, detail string) templ.Component {
	return render("warning", warningData{
		Label: strings.TrimSpace(prefix),
		Text:  detail,
	})
}
