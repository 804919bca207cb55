package ast_printer

import (
	"regexp"

	"github.com/sanity-io/litter"

	"github.com/kievzenit/coolfront/internal/ast"
)

var (
	withoutProvenance = regexp.MustCompile(`^(Origin|Metadata)$`)
	withoutTreeID     = regexp.MustCompile(`^Tree$`)
)

// Litter dumps the node as Go literal syntax. Token metadata and
// provenance are left out unless positions are requested; the tree id is
// always left out since it differs on every run.
func Litter(n ast.Node, opts Options) string {
	exclusions := withoutProvenance
	if opts.Positions {
		exclusions = withoutTreeID
	}

	return litter.Options{
		StripPackageNames: true,
		FieldExclusions:   exclusions,
	}.Sdump(n)
}
