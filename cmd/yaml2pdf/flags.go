package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	name       string
	output     string
	config     string
	completion string
	index      bool
	cover      bool
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// newFlagSet registers every flag on a fresh FlagSet bound to f.
// Completion scripts are generated from the same registration.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("yaml2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.name, "name", "n", "", "output file name without extension (default: document title)")
	fs.BoolVarP(&f.index, "index", "i", false, "request a content index")
	fs.BoolVarP(&f.cover, "front-page", "f", false, "add a front page")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.StringVar(&f.completion, "completion", "", "print a shell completion script: bash, zsh, fish")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	return fs
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. Every failure wraps ErrUsage.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	args = moveNameLast(args)
	if nameLacksValue(fs, args) {
		return nil, nil, errMissingName
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// pflag accepts the next argument as the value even when it looks like
	// an option, so "-n -f" would silently name the file "-f".
	if strings.HasPrefix(f.name, "-") {
		return nil, nil, errMissingName
	}

	return f, fs.Args(), nil
}

var errMissingName = fmt.Errorf("%w: missing argument for option -n", ErrUsage)

// nameBundle matches a bundle of the -n, -i and -f shorthands.
var nameBundle = regexp.MustCompile(`^-[nif]{2,3}$`)

// moveNameLast reorders bundles such as "-nf" to "-fn", so the name is read
// from the next argument whatever the letter order. args is not modified.
func moveNameLast(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range out {
		if arg == "--" {
			break
		}
		if nameBundle.MatchString(arg) && strings.Contains(arg, "n") {
			out[i] = "-" + strings.ReplaceAll(arg[1:], "n", "") + "n"
		}
	}
	return out
}

// nameLacksValue reports whether --name or its shorthand is the last
// option token, with no argument left to take as its value. Values of
// other options are skipped so that "-o -n" is not mistaken for it.
func nameLacksValue(fs *flag.FlagSet, args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return false
		}
		if len(arg) < 2 || arg[0] != '-' || strings.Contains(arg, "=") {
			continue
		}

		var valued *flag.Flag
		if strings.HasPrefix(arg, "--") {
			valued = fs.Lookup(arg[2:])
		} else {
			for j := 1; j < len(arg); j++ {
				fl := fs.ShorthandLookup(arg[j : j+1])
				if fl == nil || fl.Value.Type() == "bool" {
					continue
				}
				// The rest of the bundle is the value when anything follows.
				if j == len(arg)-1 {
					valued = fl
				}
				break
			}
		}
		if valued == nil || valued.Value.Type() == "bool" {
			continue
		}
		if i == len(args)-1 {
			return valued.Name == "name"
		}
		i++
	}
	return false
}

// wantsHelp reports whether help was requested anywhere in args.
// It runs before parsing so that help wins over any other error.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
