// select_flags.go defines the one selection-flag bundle shared by every
// lifecycle command, so selection semantics live in a single place.
package main

import (
	"github.com/spf13/pflag"

	"github.com/example/stackctl/internal/stack"
)

type selectionFlags struct {
	all      bool
	category string
	tag      string
}

func (f *selectionFlags) Bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.all, "all", false, "Select every discovered stack")
	fs.StringVarP(&f.category, "category", "c", "", "Select stacks by category")
	fs.StringVarP(&f.tag, "tag", "t", "", "Select stacks by tag")
}

// request builds the selection request; a positional stack name is the most
// specific mode and wins over any flag.
func (f *selectionFlags) request(args []string) stack.Request {
	q := stack.Request{
		All:      f.all,
		Category: f.category,
		Tag:      f.tag,
	}
	if len(args) > 0 {
		q.Name = args[0]
	}
	return q
}
