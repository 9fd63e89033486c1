package console

import (
	"recs-admin/internal/dto"
	"recs-admin/internal/form"
)

// View is everything the operator sees: the form, the message area and the
// last search result.
type View struct {
	Form    form.State
	Message string
	Results *dto.ResultTable
}

// Apply folds u into the view.
func (v *View) Apply(u Update) {
	switch u.Form {
	case FormPopulate:
		v.Form.Populate(u.Record)
	case FormClear:
		v.Form.Clear()
	case FormReset:
		v.Form.Reset()
	}
	v.Message = u.Message
	if u.Results != nil {
		v.Results = u.Results
	}
}

// DTO returns the view as served to the page and the JSON API.
func (v View) DTO() dto.ConsoleView {
	return dto.ConsoleView{
		Form:    v.Form.Fields(),
		Message: v.Message,
		Results: v.Results,
	}
}
