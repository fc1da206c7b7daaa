package runtime

import "github.com/aretw0/quill/pkg/domain"

// Pagination tracks the cursor over the pages of the active sequence.
// It is idle until Load is called and after Reset.
type Pagination struct {
	pages  []domain.Page
	final  *domain.Node
	cursor int
}

// Load replaces the active sequence. The cursor is clamped into range.
func (p *Pagination) Load(pages []domain.Page, final *domain.Node, cursor int) {
	p.pages = pages
	p.final = final
	p.cursor = min(max(cursor, 0), max(len(pages)-1, 0))
}

// Reset returns the controller to idle.
func (p *Pagination) Reset() {
	p.pages = nil
	p.final = nil
	p.cursor = 0
}

// Active reports whether a sequence is loaded.
func (p *Pagination) Active() bool {
	return len(p.pages) > 0
}

// Next advances one page. It reports false at the last page.
func (p *Pagination) Next() bool {
	if p.cursor >= len(p.pages)-1 {
		return false
	}
	p.cursor++
	return true
}

// Previous goes back one page. It reports false at the first page.
func (p *Pagination) Previous() bool {
	if p.cursor <= 0 {
		return false
	}
	p.cursor--
	return true
}

// Current returns the page under the cursor.
func (p *Pagination) Current() (domain.Page, bool) {
	if !p.Active() {
		return domain.Page{}, false
	}
	return p.pages[p.cursor], true
}

// IsLastPage reports whether the cursor is on the page that carries the final scene's choices.
func (p *Pagination) IsLastPage() bool {
	return p.Active() && p.cursor == len(p.pages)-1
}

func (p *Pagination) Cursor() int { return p.cursor }

func (p *Pagination) Len() int { return len(p.pages) }

// Final returns the stopping point the sequence resolved to.
func (p *Pagination) Final() *domain.Node { return p.final }
