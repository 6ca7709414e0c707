package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/pkg/swatch"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// previewWidth is the width of the colour block in the preview column.
const previewWidth = 8

// encodeText writes the palette as a table, optionally with colour blocks.
func encodeText(w io.Writer, p *swatch.Palette, opts encodeOptions) error {
	renderer := lipgloss.NewRenderer(w)
	if opts.Preview {
		renderer.SetColorProfile(termenv.TrueColor)
	}

	headers := []string{"TONE", "VALUE", "L", "C", "H"}
	if opts.Preview {
		headers = append(headers, "PREVIEW")
	}

	rows := lo.Map(p.Shades, func(sh swatch.Shade, _ int) []string {
		row := []string{
			strconv.Itoa(sh.Tone),
			sh.Value,
			strconv.FormatFloat(sh.Color.L, 'f', 3, 64),
			strconv.FormatFloat(sh.Color.C, 'f', 3, 64),
			strconv.FormatFloat(sh.Color.H, 'f', 1, 64),
		}
		if opts.Preview {
			row = append(row, previewBlock(renderer, sh.Color))
		}
		return row
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	if opts.Preview {
		t = t.BorderStyle(renderer.NewStyle().Faint(true))
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// previewBlock renders a solid block of c.
func previewBlock(r *lipgloss.Renderer, c swatch.Color) string {
	hex, err := colour.Format(c, colour.ModelHex)
	if err != nil {
		return ""
	}
	return r.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(previewWidth).
		Render("")
}
