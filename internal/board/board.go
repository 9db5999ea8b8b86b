// Package board composes the input form and the project lists into the main
// page.
package board

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/projectboard/internal/projectinput"
	"github.com/emiliopalmerini/projectboard/internal/projectlist"
	"github.com/emiliopalmerini/projectboard/internal/web/templates"
)

const pageTitle = "Project Board"

type Board struct {
	views []*projectlist.View
}

// New lays out the lists in the given order below the form.
func New(views ...*projectlist.View) *Board {
	return &Board{views: views}
}

func (b *Board) Page(f projectinput.Form, invalid []string, alert string) templ.Component {
	lists := make([]templ.Component, 0, len(b.views))
	for _, v := range b.views {
		lists = append(lists, v.Component())
	}
	return templates.Board(templates.BoardPage{
		Title: pageTitle,
		Alert: alert,
		Form:  projectinput.FormComponent(f, invalid),
		Lists: lists,
	})
}

// ListSwaps renders every list for an out-of-band swap.
func (b *Board) ListSwaps() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, v := range b.views {
			if err := v.OOBComponent().Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
