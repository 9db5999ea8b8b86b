package templates

import "github.com/a-h/templ"

// BoardPage is the data of the main page: the input form followed by one
// section per project list.
type BoardPage struct {
	Title string
	Alert string
	Form  templ.Component
	Lists []templ.Component
}
