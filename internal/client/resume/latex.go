package resume

import (
	"fmt"
	"strings"
)

// GenerateLaTeX renders the extracted data into a single-page resume
// document. The output is what gets stored on a notifier's resumeLatex
// field; compilation to PDF happens backend-side.
func GenerateLaTeX(d *Data) string {
	var b strings.Builder

	b.WriteString(`\documentclass[letterpaper,11pt]{article}
\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage[usenames,dvipsnames]{color}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{fancyhdr}

\pagestyle{fancy}
\fancyhf{}
\renewcommand{\headrulewidth}{0pt}
\renewcommand{\footrulewidth}{0pt}

\begin{document}

`)
	fmt.Fprintf(&b, "\\begin{center}\n{\\Huge %s}\\\\\n%s \\quad %s\n\\end{center}\n\n", escape(d.Name), escape(d.Email), escape(d.Phone))

	section(&b, "Summary", escape(d.Summary))
	section(&b, "Skills", escape(d.Skills))
	section(&b, "Experience", escape(d.Experience))
	section(&b, "Education", escape(d.Education))

	if len(d.Projects) > 0 {
		b.WriteString("\\section*{Projects}\n\\begin{itemize}\n")
		for _, p := range d.Projects {
			fmt.Fprintf(&b, "  \\item %s\n", escape(p))
		}
		b.WriteString("\\end{itemize}\n\n")
	}
	if len(d.Certifications) > 0 {
		b.WriteString("\\section*{Certifications}\n\\begin{itemize}\n")
		for _, c := range d.Certifications {
			fmt.Fprintf(&b, "  \\item %s\n", escape(c))
		}
		b.WriteString("\\end{itemize}\n\n")
	}

	b.WriteString("\\end{document}\n")
	return b.String()
}

func section(b *strings.Builder, title, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "\\section*{%s}\n%s\n\n", title, body)
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func escape(s string) string {
	return latexEscaper.Replace(s)
}
