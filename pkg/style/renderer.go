package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/cgrc/pkg/confstore"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/installer"
	"github.com/pterm/pterm"
)

// Message templates in [tag]...[/tag] markup. The terminal renderer styles
// them, the plain renderer strips the tags.
const (
	tmplConfListTitle    = "[title]Available configurations[/title]"
	tmplLocationsTitle   = "[title]Locations on your system used by cgrc[/title]"
	tmplNoConfs          = "[muted]No configurations found[/muted]"
	tmplNoLocations      = "[muted]No locations configured[/muted]"
	tmplNothingToInstall = "[muted]Nothing to install[/muted]"
	tmplInstallLine      = "[bold]{{name}}[/bold] [path]{{path}}[/path]"
	tmplInstallError     = "[error]{{error}}[/error]"
	tmplCodedError       = "[error]Error[/error] [[code]{{code}}[/code]]: {{message}}"
	tmplError            = "[error]Error[/error]: {{message}}"
)

// Renderer formats the informational listings of the CLI
type Renderer interface {
	RenderConfList(entries []confstore.ConfEntry) string
	RenderLocations(dirs []confstore.Dir) string
	RenderInstall(results []installer.Result) string
	RenderError(err error) string
}

// NewRenderer picks the terminal renderer when color is enabled
func NewRenderer(color bool) Renderer {
	if color {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderConfList renders the available rule files as a table
func (r *TerminalRenderer) RenderConfList(entries []confstore.ConfEntry) string {
	if len(entries) == 0 {
		return Render(tmplNoConfs)
	}

	data := pterm.TableData{{"NAME", "LOCATION", "DESCRIPTION", "PATH"}}
	for _, e := range entries {
		data = append(data, []string{
			Bold(e.Name),
			LocationStyle(e.Location).Render(string(e.Location)),
			e.Description,
			MutedStyle.Render(e.Path),
		})
	}
	return Render(tmplConfListTitle) + "\n\n" + r.table(data)
}

// RenderLocations renders the searched directories
func (r *TerminalRenderer) RenderLocations(dirs []confstore.Dir) string {
	if len(dirs) == 0 {
		return Render(tmplNoLocations)
	}

	data := pterm.TableData{{"LOCATION", "PATH"}}
	for _, d := range dirs {
		data = append(data, []string{
			LocationStyle(d.Location).Render(string(d.Location)),
			PathStyle.Render(d.Path),
		})
	}
	return Render(tmplLocationsTitle) + "\n\n" + r.table(data)
}

// RenderInstall renders one line per installed rule file
func (r *TerminalRenderer) RenderInstall(results []installer.Result) string {
	if len(results) == 0 {
		return Render(tmplNothingToInstall)
	}

	var result strings.Builder
	for _, res := range results {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			StatusIndicator(res.Status),
			StatusStyle(res.Status).Sprint(" "+string(res.Status)+" "),
			RenderTemplate(tmplInstallLine, map[string]string{"name": res.Name, "path": res.Path})))
		if res.Error != nil {
			detail := RenderTemplate(tmplInstallError, map[string]string{"error": res.Error.Error()})
			result.WriteString(Indent(detail, 2) + "\n")
		}
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	return Render(errorMarkup(err))
}

func (r *TerminalRenderer) table(data pterm.TableData) string {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Fall back to tab separated rows
		return NewPlainRenderer().rows(data)
	}
	return strings.TrimRight(out, "\n")
}

// PlainRenderer implements Renderer without any styling, for pipes and
// scripts.
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderConfList renders name, location, description and path per line
func (r *PlainRenderer) RenderConfList(entries []confstore.ConfEntry) string {
	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		data = append(data, []string{e.Name, string(e.Location), e.Description, e.Path})
	}
	return r.rows(data)
}

// RenderLocations renders location and path per line
func (r *PlainRenderer) RenderLocations(dirs []confstore.Dir) string {
	data := make([][]string, 0, len(dirs))
	for _, d := range dirs {
		data = append(data, []string{string(d.Location), d.Path})
	}
	return r.rows(data)
}

// RenderInstall renders status, name and path per line
func (r *PlainRenderer) RenderInstall(results []installer.Result) string {
	data := make([][]string, 0, len(results))
	for _, res := range results {
		row := []string{string(res.Status), res.Name, res.Path}
		if res.Error != nil {
			row = append(row, res.Error.Error())
		}
		data = append(data, row)
	}
	return r.rows(data)
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return Strip(errorMarkup(err))
}

// errorMarkup fills the error template for err
func errorMarkup(err error) string {
	if code, msg, ok := describeError(err); ok {
		return Expand(tmplCodedError, map[string]string{"code": string(code), "message": msg})
	}
	return Expand(tmplError, map[string]string{"message": err.Error()})
}

// describeError splits a coded error into its code and message
func describeError(err error) (errors.ErrorCode, string, bool) {
	var cgrcErr *errors.CgrcError
	if !stderrors.As(err, &cgrcErr) {
		return "", "", false
	}
	msg := cgrcErr.Message
	if cgrcErr.Wrapped != nil {
		msg += ": " + cgrcErr.Wrapped.Error()
	}
	return cgrcErr.Code, msg, true
}

func (r *PlainRenderer) rows(data [][]string) string {
	lines := make([]string, len(data))
	for i, row := range data {
		lines[i] = strings.Join(row, "\t")
	}
	return strings.Join(lines, "\n")
}
