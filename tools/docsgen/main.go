// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders a markdown and a tldr page for every gridfilter
// subcommand. Flags come from the live command tree. Examples and notes come
// from <docs>/templates/gridfilter.yaml when it exists.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/gridfilter/internal/command"
	"github.com/tfctl/gridfilter/internal/version"
)

type Extras struct {
	Subcommands map[string]Extra `yaml:"subcommands"`
}

type Extra struct {
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	Extra
	ID      string
	Short   string
	Usage   string
	Flags   []Flag
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

const mdTemplate = `# gridfilter {{.ID}}

{{.Short}}
{{- if .Description}}

{{.Description}}
{{- end}}

## Usage

` + "```" + `
{{.Usage}}
` + "```" + `

## Flags

| Flag | Description | Default |
| ---- | ----------- | ------- |
{{- range .Flags}}
| ` + "`{{.Syntax}}`" + ` | {{.Description}} | {{.Default}} |
{{- end}}
{{- if .Examples}}

## Examples
{{range .Examples}}
{{.Description}}

` + "```" + `
{{.Command}}
` + "```" + `
{{end}}
{{- end}}
{{- if .Notes}}

## Notes
{{range .Notes}}
- {{.}}
{{- end}}
{{- end}}

_{{.Version}}, {{.Date}}_
`

const tldrTemplate = `# gridfilter {{.ID}}

> {{.Short}}.
{{- range .Examples}}

- {{.Description}}:

` + "`{{.Command}}`" + `
{{- end}}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}

	if err := generate(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(docs string) error {
	app, err := command.InitApp(context.Background(), []string{"gridfilter"})
	if err != nil {
		return err
	}

	extras, err := loadExtras(filepath.Join(docs, "templates", "gridfilter.yaml"))
	if err != nil {
		return err
	}

	types := []Outputs{
		{Template: mdTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: tldrTemplate, Folder: filepath.Join(docs, "tldr"), Prefix: "gridfilter-", Suffix: ".md"},
	}

	for _, sub := range app.Commands {
		if sub.Name == "completion" {
			continue
		}

		data := TemplateData{
			Extra:   extras.Subcommands[sub.Name],
			ID:      sub.Name,
			Short:   sub.Usage,
			Usage:   sub.UsageText,
			Flags:   docFlags(sub.Flags),
			Date:    time.Now().Format("January 2, 2006"),
			Version: version.String(),
		}

		for _, t := range types {
			if err := render(t, data); err != nil {
				return err
			}
		}
	}

	return nil
}

func render(t Outputs, data TemplateData) error {
	if err := os.MkdirAll(t.Folder, 0755); err != nil {
		return err
	}

	tmpl, err := template.New(data.ID).Parse(t.Template)
	if err != nil {
		return err
	}

	path := filepath.Join(t.Folder, t.Prefix+data.ID+t.Suffix)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Println("Generating", path)
	return tmpl.Execute(file, data)
}

// loadExtras reads the hand-written examples and notes. A missing file
// yields no extras.
func loadExtras(path string) (Extras, error) {
	var extras Extras
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return extras, nil
	}
	if err != nil {
		return extras, err
	}

	if err := yaml.Unmarshal(data, &extras); err != nil {
		return extras, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return extras, nil
}

func docFlags(flags []cli.Flag) []Flag {
	var out []Flag
	for _, f := range flags {
		if v, ok := f.(cli.VisibleFlag); ok && !v.IsVisible() {
			continue
		}

		var names []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}

		flag := Flag{Syntax: strings.Join(names, ", ")}
		if u, ok := f.(interface{ GetUsage() string }); ok {
			flag.Description = u.GetUsage()
		}
		if d, ok := f.(interface{ GetDefaultText() string }); ok {
			flag.Default = d.GetDefaultText()
		}
		out = append(out, flag)
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.TrimLeft(out[i].Syntax, "-") < strings.TrimLeft(out[j].Syntax, "-")
	})
	return out
}
