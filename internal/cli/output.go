package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"recs-admin/internal/console"
)

func printJSON(w io.Writer, view console.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view.DTO())
}

func printView(w io.Writer, view console.View) {
	fmt.Fprintln(w, view.Message)
	fmt.Fprintln(w)

	f := view.Form
	fmt.Fprintf(w, "  ID:                     %s\n", f.ID)
	fmt.Fprintf(w, "  Name:                   %s\n", f.Name)
	fmt.Fprintf(w, "  Product ID:             %s\n", f.ProductID)
	fmt.Fprintf(w, "  Recommended Product ID: %s\n", f.RecommendedProductID)
	fmt.Fprintf(w, "  Recommendation Type:    %s\n", f.RecommendationType)

	if view.Results == nil {
		return
	}

	fmt.Fprintf(w, "\nResults (%d):\n\n", len(view.Results.Rows))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(view.Results.Columns, "\t"))
	for _, row := range view.Results.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
