package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenManHeader contains man page metadata
type GenManHeader struct {
	Title   string
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// GenManTree writes a section 1 man page per visible command into dir.
func GenManTree(cmd *cobra.Command, dir string) error {
	return GenManTreeFromHeader(cmd, dir, &GenManHeader{
		Section: "1",
		Source:  "ppmap",
		Manual:  "ppmap Manual",
	})
}

// GenManTreeFromHeader is GenManTree with explicit header metadata.
func GenManTreeFromHeader(cmd *cobra.Command, dir string, header *GenManHeader) error {
	for _, c := range visibleCommands(cmd) {
		if err := GenManTreeFromHeader(c, dir, header); err != nil {
			return err
		}
	}

	section := "1"
	if header != nil && header.Section != "" {
		section = header.Section
	}

	filename := filepath.Join(dir, strings.ReplaceAll(cmd.CommandPath(), " ", "-")+"."+section)
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer f.Close()

	// Each page gets its own title; the header is shared across the tree.
	var h GenManHeader
	if header != nil {
		h = *header
	}
	h.Title = ""
	return GenMan(cmd, &h, f)
}

// GenMan renders the man page (roff) for a single command.
func GenMan(cmd *cobra.Command, header *GenManHeader, w io.Writer) error {
	if header == nil {
		header = &GenManHeader{}
	}
	if header.Section == "" {
		header.Section = "1"
	}

	_, err := w.Write(md2man.Render(genManMarkdown(cmd, header)))
	return err
}

func genManMarkdown(cmd *cobra.Command, header *GenManHeader) []byte {
	cmd.InitDefaultHelpFlag()

	buf := new(bytes.Buffer)
	name := cmd.CommandPath()

	title := header.Title
	if title == "" {
		title = strings.ToUpper(strings.ReplaceAll(name, " ", "-"))
	}
	var date string
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(buf, "%% %s(%s) %s | %s\n\n", title, header.Section, date, header.Manual)

	short := cmd.Short
	if short == "" {
		short = "manual page for " + name
	}
	fmt.Fprintf(buf, "# NAME\n%s \\- %s\n\n", name, short)

	buf.WriteString("# SYNOPSIS\n**" + name + "**")
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if len(visibleCommands(cmd)) > 0 {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n" + cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	local, inherited := cmd.NonInheritedFlags(), cmd.InheritedFlags()
	if local.HasAvailableFlags() || inherited.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manPrintFlags(buf, local)
		manPrintFlags(buf, inherited)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n```\n" + cmd.Example + "\n```\n\n")
	}

	if cmd.HasParent() {
		parent := strings.ReplaceAll(cmd.Parent().CommandPath(), " ", "-")
		fmt.Fprintf(buf, "# SEE ALSO\n**%s(%s)**\n", parent, header.Section)
	}

	return buf.Bytes()
}

func manPrintFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	var list []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			list = append(list, f)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	for _, f := range list {
		if f.Shorthand != "" {
			fmt.Fprintf(buf, "**-%s**, **--%s**", f.Shorthand, f.Name)
		} else {
			fmt.Fprintf(buf, "**--%s**", f.Name)
		}
		if t := f.Value.Type(); t != "bool" {
			fmt.Fprintf(buf, " <%s>", t)
		}
		buf.WriteString("\n: " + f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	}
}
