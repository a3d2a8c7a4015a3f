package cli

import (
	"fmt"

	"github.com/Makepad-fr/shoplist/internal/model"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

// numbered keeps an item's 1-based position in the full list, which is what
// done/rm expect regardless of filtering or grouping.
type numbered struct {
	n  int
	it model.Item
}

func listLines(items []model.Item, filter model.Filter, group bool) []string {
	t := ui.Current()

	// Header + progress
	d, p := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Lista de Compras"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	if filter != model.All {
		lines = append(lines, ui.C(t.Muted, "filter: ")+filter.Label())
	}
	lines = append(lines, "")

	var shown []numbered
	for i, it := range items {
		if filter.Match(it) {
			shown = append(shown, numbered{i + 1, it})
		}
	}

	if group {
		lines = append(lines, groupLines(shown)...)
	} else {
		lines = append(lines, flatLines(shown)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `shoplist add Café -q 2 -p 5,99`"))
	return lines
}

func flatLines(items []numbered) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, ui.EmptyMessage)}
	}
	out := make([]string, 0, len(items))
	for _, x := range items {
		idx := fmt.Sprintf("%2d.", x.n)
		out = append(out, ui.C(ui.Current().Muted, idx)+" "+ui.ItemLine(x.it))
	}
	return out
}

func groupLines(items []numbered) []string {
	var active, done []numbered
	for _, x := range items {
		if x.it.Completed {
			done = append(done, x)
		} else {
			active = append(active, x)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, fmt.Sprintf("Ativos (%d)", len(active))))
	if len(active) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(active)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, fmt.Sprintf("Concluídos (%d)", len(done))))
	if len(done) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
