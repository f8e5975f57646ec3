package layout

import (
	"github.com/papapumpkin/strata/internal/classify"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/vocab"
)

// fixture interns test items so repeated paths share one identity.
type fixture struct {
	reg *item.Registry
}

func newFixture() *fixture {
	return &fixture{reg: item.NewRegistry()}
}

func (f *fixture) get(path string, block bool) item.Stack {
	id := item.ID{Namespace: item.DefaultNamespace, Path: path}
	if it, ok := f.reg.Lookup(id); ok {
		return item.NewStack(it)
	}
	it := &item.Item{ID: id, Block: block}
	_ = f.reg.Register(it)
	return item.NewStack(it)
}

// blocks returns block-item stacks for paths.
func (f *fixture) blocks(paths ...string) []item.Stack {
	out := make([]item.Stack, 0, len(paths))
	for _, p := range paths {
		out = append(out, f.get(p, true))
	}
	return out
}

// items returns non-block stacks for paths.
func (f *fixture) items(paths ...string) []item.Stack {
	out := make([]item.Stack, 0, len(paths))
	for _, p := range paths {
		out = append(out, f.get(p, false))
	}
	return out
}

func paths(stacks []item.Stack) []string {
	out := make([]string, 0, len(stacks))
	for _, s := range stacks {
		out = append(out, item.Path(s))
	}
	return out
}

func defaultClassifier() *classify.Classifier {
	return classify.New(vocab.Default())
}

func testID(path string) item.ID {
	return item.ID{Namespace: "blockfilter", Path: path}
}
