package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/huynhanx03/go-tetris/pkg/piece"
)

var symbolColors = map[piece.Symbol]lipgloss.Color{
	piece.I: lipgloss.Color("#00BCD4"),
	piece.O: lipgloss.Color("#FFEB3B"),
	piece.T: lipgloss.Color("#9C27B0"),
	piece.L: lipgloss.Color("#FF9800"),
	piece.S: lipgloss.Color("#4CAF50"),
	piece.Z: lipgloss.Color("#F44336"),
	piece.J: lipgloss.Color("#3F51B5"),
}

// renderer styles output for the terminal behind w. Writers that are not
// terminals get plain text.
type renderer struct {
	title  lipgloss.Style
	label  lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	dim    lipgloss.Style
	pieces map[piece.Symbol]lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	out := &renderer{
		title:  r.NewStyle().Bold(true),
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0BEC5")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#F44336")),
		dim:    r.NewStyle().Faint(true),
		pieces: make(map[piece.Symbol]lipgloss.Style, len(symbolColors)),
	}
	for sym, c := range symbolColors {
		out.pieces[sym] = r.NewStyle().Bold(true).Foreground(c)
	}
	return out
}

func (r *renderer) piece(p piece.Piece) string {
	if st, ok := r.pieces[p.Symbol]; ok {
		return st.Render(p.String())
	}
	return p.String()
}

func (r *renderer) row(ps []piece.Piece) string {
	if len(ps) == 0 {
		return r.dim.Render("(empty)")
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = r.piece(p)
	}
	return strings.Join(parts, " ")
}

func (r *renderer) view(w io.Writer, v View) {
	fmt.Fprintf(w, "%s %s\n", r.label.Render("Next pieces:  "), r.row(v.Queue))
	if v.HasReserve {
		fmt.Fprintf(w, "%s %s\n", r.label.Render("Reserve (top):"), r.row(v.Reserve))
	}
}

func (r *renderer) menu(w io.Writer, opts []Option) {
	fmt.Fprintf(w, "\n%s\n", r.title.Render("Options:"))
	for _, o := range opts {
		fmt.Fprintf(w, "%d. %s\n", o.Code, o.Label)
	}
	fmt.Fprintf(w, "%d. Quit\n", CmdQuit)
	fmt.Fprint(w, "Choose an action: ")
}

func (r *renderer) success(w io.Writer, msg string) {
	fmt.Fprintln(w, r.ok.Render(msg))
}

func (r *renderer) failure(w io.Writer, err error) {
	fmt.Fprintln(w, r.fail.Render("Action failed: "+err.Error()))
}
