package report

import (
	"fmt"
	"io"

	"skin-catalog/core/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderPlan writes the new skins, the skipped items and the summary as tables.
func RenderPlan(w io.Writer, plan *reconcile.Plan) {
	if len(plan.NewEntries) > 0 {
		tw := newTable(w)
		tw.SetTitle("New skins")
		tw.AppendHeader(table.Row{"Character", "ID", "Skin ID", "Skin", "Origin", "Tier"})
		for _, e := range plan.NewEntries {
			tw.AppendRow(table.Row{e.Name, e.ID, e.SkinID, e.SkinName, e.Origin, e.Tier})
		}
		tw.Render()
	}

	if len(plan.Diagnostics) > 0 {
		tw := newTable(w)
		tw.SetTitle("Skipped")
		tw.AppendHeader(table.Row{"Reason", "Character", "Skin", "Detail"})
		for _, d := range plan.Diagnostics {
			tw.AppendRow(table.Row{d.Kind, d.Character, d.Skin, d.Message})
		}
		tw.Render()
	}

	s := plan.Summary
	tw := newTable(w)
	tw.SetTitle("Summary")
	tw.AppendRows([]table.Row{
		{"Catalog entries", s.CatalogEntries},
		{"Characters", s.Characters},
		{"Harvested", s.Harvested},
		{"Already known", s.Existing},
		{"New", s.New},
		{"Synthesized ids", s.Synthesized},
		{"Skipped", s.Skipped},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	tw.Render()

	if plan.Empty() {
		fmt.Fprintln(w, "No new skins found.")
	}
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	return tw
}
