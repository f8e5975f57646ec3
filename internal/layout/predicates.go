package layout

import (
	"strings"

	"github.com/papapumpkin/strata/internal/classify"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/vocab"
)

// Predicates are the category inclusion tests. Every predicate rejects
// omitted stacks itself, independent of the extraction pass.
type Predicates struct {
	c  *classify.Classifier
	kw vocab.Keywords
}

// NewPredicates binds the inclusion tests to a classifier.
func NewPredicates(c *classify.Classifier) *Predicates {
	return &Predicates{c: c, kw: c.Vocabulary().Keywords}
}

// path returns the stack path, or ok=false for omitted stacks.
func (p *Predicates) path(s item.Stack) (string, bool) {
	if p.c.Omit(s) {
		return "", false
	}
	return item.Path(s), true
}

func (p *Predicates) blockPath(s item.Stack) (string, bool) {
	path, ok := p.path(s)
	if !ok || !s.Item.Block {
		return "", false
	}
	return path, true
}

// WoodStructure accepts items of a known wood species that are blocks or
// have a recognised wood shape (boats, signs).
func (p *Predicates) WoodStructure(s item.Stack) bool {
	path, ok := p.path(s)
	if !ok || p.c.WoodBase(path) == "" {
		return false
	}
	return s.Item.Block || p.c.WoodShape(path) != ""
}

// StoneBlock accepts stone-like blocks that are not sand or clay.
func (p *Predicates) StoneBlock(s item.Stack) bool {
	path, ok := p.blockPath(s)
	if !ok {
		return false
	}
	return classify.ContainsAny(path, p.kw.Stone...) && !classify.ContainsAny(path, p.kw.Sand...)
}

// CopperBlock accepts copper blocks with a known copper base, excluding ores.
func (p *Predicates) CopperBlock(s item.Stack) bool {
	path, ok := p.blockPath(s)
	if !ok {
		return false
	}
	if !strings.Contains(path, "copper") || strings.Contains(path, "ore") {
		return false
	}
	return p.c.CopperBase(path) != ""
}

// NetherBlock accepts blocks with a nether keyword.
func (p *Predicates) NetherBlock(s item.Stack) bool {
	return p.blockKeyword(s, p.kw.Nether)
}

// EndBlock accepts blocks with an end keyword.
func (p *Predicates) EndBlock(s item.Stack) bool {
	return p.blockKeyword(s, p.kw.End)
}

// SandBlock accepts sand, clay, terracotta, mud and gravel blocks.
func (p *Predicates) SandBlock(s item.Stack) bool {
	return p.blockKeyword(s, p.kw.Sand)
}

// Workstation accepts crafting stations and storage blocks.
func (p *Predicates) Workstation(s item.Stack) bool {
	return p.blockKeyword(s, p.kw.Workstation)
}

// Utility accepts traversal and signage blocks.
func (p *Predicates) Utility(s item.Stack) bool {
	return p.blockKeyword(s, p.kw.Utility)
}

// OverworldNature accepts anything without a nether or end keyword.
func (p *Predicates) OverworldNature(s item.Stack) bool {
	path, ok := p.path(s)
	if !ok {
		return false
	}
	return !classify.ContainsAny(path, p.kw.Nether...) && !classify.ContainsAny(path, p.kw.End...)
}

func (p *Predicates) blockKeyword(s item.Stack, keywords []string) bool {
	path, ok := p.blockPath(s)
	return ok && classify.ContainsAny(path, keywords...)
}
