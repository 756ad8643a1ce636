package cmdutil

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/output"
	"github.com/nestgen/cli/internal/pipeline"
)

// WriteResult prints the files a successful run wrote, as a tree rooted at
// the source root followed by a summary line.
func WriteResult(w io.Writer, sourceRoot string, res *pipeline.Result) {
	files := make(map[string]string, len(res.Files))
	overwritten := 0
	for _, f := range res.Files {
		status := output.StatusCreated
		if f.Overwritten {
			status = output.StatusOverwritten
			overwritten++
		}
		files[f.Rel] = status
	}

	fmt.Fprint(w, output.RenderFileTree(sourceRoot, files))

	for _, s := range res.Skipped {
		fmt.Fprintln(w, output.StyleDim.Render("skipped "+s.Action()))
	}

	summary := fmt.Sprintf("Generated %s in %s", output.FormatCount(len(res.Files), "file"), output.StyleNoun.Render(sourceRoot))
	if overwritten > 0 {
		summary += fmt.Sprintf(" (%d overwritten)", overwritten)
	}
	fmt.Fprintln(w, output.FormatCheckmark(output.StyleSummary.Render(summary)))
}

// WritePlanTable prints a plan as lipgloss tables.
func WritePlanTable(w io.Writer, p *Plan) {
	pkgs := output.NewTable("PACKAGE", "VERSION", "STATUS")
	for _, s := range p.Dependencies {
		pkgs.Row(s.Name, versionCell(s), pinStatus(s))
	}
	fmt.Fprintln(w, pkgs.String())
	fmt.Fprintln(w)

	cmds := output.NewTable("STEP", "COMMAND")
	cmds.Row(pipeline.InstallingPackages.Action(), p.Install.String())
	cmds.Row(pipeline.InitializingSchema.Action(), p.Schema.String())
	fmt.Fprintln(w, cmds.String())
	fmt.Fprintln(w)

	dirs := output.NewTable("DIRECTORY")
	for _, d := range p.Directories {
		dirs.Row(d)
	}
	fmt.Fprintln(w, dirs.String())
	fmt.Fprintln(w)

	tmpls := output.NewTable("TEMPLATE", "DESTINATION", "IMPORTS")
	for _, t := range p.Templates {
		imports := make([]string, len(t.Imports))
		for i, id := range t.Imports {
			imports[i] = string(id)
		}
		tmpls.Row(string(t.ID), t.Path, strings.Join(imports, ", "))
	}
	fmt.Fprintln(w, tmpls.String())
}

// WriteTemplateList prints the registry as a tree of destinations with
// template identifiers as descriptions.
func WriteTemplateList(w io.Writer, sourceRoot string, tmpls []PlanTemplate) {
	files := make(map[string]string, len(tmpls))
	for _, t := range tmpls {
		rel := strings.TrimPrefix(t.Path, path.Clean(sourceRoot)+"/")
		files[rel] = string(t.ID)
	}
	fmt.Fprint(w, output.RenderFileTree(sourceRoot, files))
}

func versionCell(s deps.Specifier) string {
	if !s.Pinned {
		return "-"
	}
	if s.Version == "" {
		return `""`
	}
	return s.Version
}

func pinStatus(s deps.Specifier) string {
	if s.Pinned {
		return output.StatusPinned
	}
	return output.StatusUnpinned
}
