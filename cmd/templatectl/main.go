// Command templatectl checks template drafts offline and prints the
// payload that would be submitted to the Graph API.
//
//	templatectl validate -f draft.json [-policy policy.toml]
//	templatectl build -f draft.json [-policy policy.toml]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"whatsapp-studio/internal/config"
	"whatsapp-studio/internal/template"
)

const usage = "usage: templatectl validate|build -f draft.json [-policy policy.toml]"

var errInvalid = errors.New("draft is invalid")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	cmd := args[0]
	if cmd != "validate" && cmd != "build" {
		fmt.Fprintf(stderr, "unknown command %q\n%s\n", cmd, usage)
		return 2
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "-", "draft JSON file, - for stdin")
	policy := fs.String("policy", os.Getenv("TEMPLATE_POLICY_FILE"), "TOML policy overriding the default rules")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	rules, err := config.LoadPolicy(*policy)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	draft, err := readDraft(*file, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := check(rules, draft, stdout); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	if cmd == "validate" {
		fmt.Fprintln(stdout, "ok")
		return 0
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(template.Build(draft)); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func readDraft(path string, stdin io.Reader) (template.Draft, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return template.Draft{}, err
		}
		defer f.Close()
		r = f
	}
	var d template.Draft
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return template.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

// check prints one line per field error.
func check(rules template.Rules, d template.Draft, out io.Writer) error {
	res := rules.Validate(d)
	if res.Valid() {
		return nil
	}
	for _, field := range res.Fields() {
		fmt.Fprintf(out, "%s: %s\n", field, res[field])
	}
	return errInvalid
}
