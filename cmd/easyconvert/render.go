package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/units"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	numberStyle = lipgloss.NewStyle().Bold(true)
	unitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	arrowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Padding(0, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderResult draws the input and output side by side, like the converter page's card.
func renderResult(r conversion.ConversionResult, plain bool) string {
	if plain {
		return r.String()
	}

	side := func(value, unit string) string {
		return lipgloss.JoinVertical(lipgloss.Center, numberStyle.Render(value), unitStyle.Render(unit))
	}
	return cardStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		side(r.InputValue, r.InputUnit),
		arrowStyle.Render("→"),
		side(r.OutputValue, r.OutputUnit),
	))
}

func renderError(err error, plain bool) string {
	if plain {
		return "Error: " + err.Error()
	}
	return errorStyle.Render("Error: " + err.Error())
}

func unitRow(u *units.UnitDefinition) []string {
	return []string{u.String(), u.Type, strconv.FormatBool(u.Metric), strings.Join(u.Aliases, ", ")}
}

// renderUnits lists units as a table, or as tab separated lines when plain.
func renderUnits(defs []*units.UnitDefinition, plain bool) string {
	headers := []string{"Name", "Type", "Metric", "Aliases"}
	if plain {
		var b strings.Builder
		b.WriteString(strings.Join(headers, "\t"))
		for _, u := range defs {
			fmt.Fprintf(&b, "\n%s", strings.Join(unitRow(u), "\t"))
		}
		return b.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, u := range defs {
		t.Row(unitRow(u)...)
	}
	return t.Render()
}
