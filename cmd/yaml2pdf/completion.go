package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("%w: unsupported shell", ErrUsage)

// inputGlobs are offered for the <FILE> argument.
var inputGlobs = []string{"*.yaml", "*.yml"}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Values []string // for enum flags
	Globs  []string // for file flags
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values []string
	Globs  []string
	IsDir  bool
}

var flagCompletionMeta = map[string]completionMeta{
	"completion": {Values: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
	"config":     {Globs: []string{"*.yaml", "*.yml"}},
	"output":     {IsDir: true},
}

// completionFlags extracts flag definitions from the CLI FlagSet.
func completionFlags() []flagDef {
	var defs []flagDef

	newFlagSet(&cliFlags{}).VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type, fd.Values = flagEnum, meta.Values
			case len(meta.Globs) > 0:
				fd.Type, fd.Globs = flagFile, meta.Globs
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		defs = append(defs, fd)
	})

	return defs
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	flags := completionFlags()

	switch Shell(strings.ToLower(string(shell))) {
	case ShellBash:
		return generateBash(w, flags)
	case ShellZsh:
		return generateZsh(w, flags)
	case ShellFish:
		return generateFish(w, flags)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

func generateBash(w io.Writer, flags []flagDef) error {
	var words []string
	var cases strings.Builder

	for _, f := range flags {
		names := "--" + f.Long
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			names = "-" + f.Short + "|" + names
			words = append(words, "-"+f.Short)
		}

		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n            return ;;\n",
				names, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -X '!@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\") )\n            return ;;\n",
				names, strings.Join(f.Globs, "|"))
		case flagDir:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -d -- \"$cur\") )\n            return ;;\n", names)
		case flagString:
			fmt.Fprintf(&cases, "        %s)\n            return ;;\n", names)
		}
	}

	_, err := fmt.Fprintf(w, `# bash completion for yaml2pdf
_yaml2pdf() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "$prev" in
%s    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W %q -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -X '!@(%s)' -- "$cur") $(compgen -d -- "$cur") )
}
shopt -s extglob
complete -o filenames -F _yaml2pdf yaml2pdf
`, cases.String(), strings.Join(words, " "), strings.Join(inputGlobs, "|"))
	return err
}

func generateZsh(w io.Writer, flags []flagDef) error {
	var specs []string

	for _, f := range flags {
		desc := zshEscape(f.Desc)
		action := ""
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf(":file:_files -g %q", "("+strings.Join(f.Globs, "|")+")")
		case flagDir:
			action = ":directory:_files -/"
		case flagString:
			action = ":" + f.Long + ":"
		}

		if f.Short != "" {
			specs = append(specs, fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action))
		} else {
			specs = append(specs, fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action))
		}
	}
	specs = append(specs, fmt.Sprintf("'1:report file:_files -g %q'", "("+strings.Join(inputGlobs, "|")+")"))

	_, err := fmt.Fprintf(w, "#compdef yaml2pdf\n\n_arguments -s \\\n    %s\n",
		strings.Join(specs, " \\\n    "))
	return err
}

func generateFish(w io.Writer, flags []flagDef) error {
	if _, err := fmt.Fprintln(w, "# fish completion for yaml2pdf"); err != nil {
		return err
	}

	for _, f := range flags {
		line := "complete -c yaml2pdf -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagEnum:
			line += fmt.Sprintf(" -x -a %q", strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagString:
			line += " -x"
		}
		line += fmt.Sprintf(" -d %q", f.Desc)

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "complete -c yaml2pdf -k -a '(__fish_complete_suffix .yaml .yml)'\n")
	return err
}

// zshEscape makes s safe inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}
