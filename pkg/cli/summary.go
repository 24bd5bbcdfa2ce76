package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

func printSummary(w io.Writer, summary *model.Summary) {
	fmt.Fprintf(w, "Migrated %d repositories\n", summary.Total)
	color.New(color.FgGreen).Fprintf(w, "  created: %d\n", len(summary.Succeeded))
	if !summary.HasFailure() {
		return
	}

	failed := color.New(color.FgRed)
	failed.Fprintf(w, "  failed:  %d\n", len(summary.Failed))
	for _, name := range summary.Failed {
		failed.Fprintf(w, "    - %s\n", name)
	}
}

func printDescriptors(w io.Writer, descriptors []*model.Descriptor) {
	bold := color.New(color.Bold)
	for _, d := range descriptors {
		bold.Fprintf(w, "%s", d.Name)
		fmt.Fprintf(w, "\t%s\t%s\n", d.FullName, d.SourceURL)
	}
	fmt.Fprintf(w, "%d repositories\n", len(descriptors))
}
