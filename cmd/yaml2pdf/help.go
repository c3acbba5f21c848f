package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: yaml2pdf [OPTION]... <FILE>")
	fmt.Fprintln(w, "Generate a PDF report from FILE.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -n, --name <NAME>         Generated PDF file name will be <NAME>.pdf")
	fmt.Fprintln(w, "  -i, --index               Generated PDF will have content index")
	fmt.Fprintln(w, "  -f, --front-page          Generated PDF will have front page")
	fmt.Fprintln(w, "  -o, --output <DIR>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --completion <shell>  Print completion script: bash, zsh, fish")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Short options combine: -fi, -fin <NAME>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  YAML2PDF_CONFIG           Config file name or path")
	fmt.Fprintln(w, "  YAML2PDF_OUTPUT_DIR       Default output directory")
	fmt.Fprintln(w, "  YAML2PDF_PAGE_SIZE        Page size: a4, letter, legal")
	fmt.Fprintln(w, "  YAML2PDF_DATE_FORMAT      Header date pattern when the document has none")
	fmt.Fprintln(w, "                            strftime directives or a preset: iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Variables may also be set in a .env file in the working directory.")
}
