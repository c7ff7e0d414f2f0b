package duel

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"headsup-analyzer/pkg/deck"
)

// Render writes a report for the terminal
func Render(w io.Writer, d *Duel, r *Report) error {
	data := pterm.TableData{
		{"", "Key", "Range"},
		{"Hero", r.HeroKey.String(), r.HeroRange.Name},
		{"Villain", r.VillainKey.String(), r.VillainRange.Name},
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	var lines []string
	lines = append(lines, pterm.Sprintf("Hand:  %s", d.Hole.Symbols()))
	if d.Board.Len() > 0 {
		lines = append(lines, pterm.Sprintf("Board: %s", d.Board.Symbols()))
	}

	if r.MadeHand != nil {
		lines = append(lines, pterm.Sprintf("Made:  %s", pterm.LightGreen(r.MadeHand.String())))
	}

	if len(r.Draws) > 0 {
		draws := make([]string, len(r.Draws))
		for i, draw := range r.Draws {
			draws[i] = draw.String()
		}
		lines = append(lines, pterm.Sprintf("Draws: %s", strings.Join(draws, ", ")))
	}

	if len(r.Overcards) > 0 {
		overs := make([]string, len(r.Overcards))
		for i, rank := range r.Overcards {
			overs[i] = deck.RankSymbol(rank)
		}
		lines = append(lines, pterm.Sprintf("Overs: %s", strings.Join(overs, ", ")))
	}

	lines = append(lines,
		pterm.Sprintf("Win Rate (range vs. range): %s", pterm.LightCyan(r.RangeEquity)),
		pterm.Sprintf("Win Rate (hand vs. range):  %s", pterm.LightCyan(r.HandEquity)),
	)

	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle(pterm.LightYellow("|DUEL|")).WithTitleTopCenter().
		Sprint(strings.Join(lines, "\n"))

	_, err = fmt.Fprintf(w, "%s\n%s\n", table, box)
	return err
}
