package console

import (
	"strconv"

	"recs-admin/internal/dto"
	"recs-admin/internal/transport"
)

const (
	MessageSuccess = "Success"
	MessageDeleted = "Recommendation has been Deleted!"
)

// FormAction says what an update does to the form.
type FormAction int

const (
	FormKeep FormAction = iota
	FormPopulate
	FormClear // editable fields only, id kept
	FormReset // every field including id
)

// Update describes the state change produced by one command. It is applied
// with View.Apply.
type Update struct {
	Form    FormAction
	Record  dto.RecommendationResponse
	Message string
	// Results replaces the result table when non-nil.
	Results *dto.ResultTable
}

var tableColumns = []string{
	"ID",
	"Name",
	"Product ID",
	"Recommended Product ID",
	"Recommendation Type",
	"Created Time",
	"Updated Time",
}

// Render maps the outcome of cmd to the update it causes. A successful
// response whose body cannot be decoded is handled like a failure without a
// message.
func Render(cmd Command, out transport.Outcome) Update {
	switch cmd {
	case CommandCreate, CommandUpdate, CommandRetrieve:
		if out.OK {
			var rec dto.RecommendationResponse
			if err := out.Decode(&rec); err == nil {
				return Update{Form: FormPopulate, Record: rec, Message: MessageSuccess}
			}
			out = transport.Failure(out.StatusCode, nil)
		}
		if cmd == CommandRetrieve {
			return Update{Form: FormClear, Message: out.Message}
		}
		return Update{Form: FormKeep, Message: out.Message}

	case CommandDelete:
		if out.OK {
			return Update{Form: FormReset, Message: MessageDeleted}
		}
		return Update{Form: FormKeep, Message: transport.FallbackMessage}

	case CommandSearch:
		if out.OK {
			var recs []dto.RecommendationResponse
			if err := out.Decode(&recs); err == nil {
				table := RenderTable(recs)
				u := Update{Form: FormKeep, Message: MessageSuccess, Results: &table}
				if len(recs) > 0 {
					u.Form = FormPopulate
					u.Record = recs[0]
				}
				return u
			}
			out = transport.Failure(out.StatusCode, nil)
		}
		return Update{Form: FormKeep, Message: out.Message}

	case CommandClear:
		return Update{Form: FormReset}
	}
	return Update{Form: FormKeep, Message: transport.FallbackMessage}
}

// RenderTable lays records out one row each, in the order given.
func RenderTable(recs []dto.RecommendationResponse) dto.ResultTable {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			strconv.Itoa(rec.ID),
			rec.Name,
			strconv.Itoa(rec.ProductID),
			strconv.Itoa(rec.RecommendedProductID),
			rec.RecommendationType,
			rec.CreatedAt,
			rec.UpdatedAt,
		})
	}
	return dto.ResultTable{Columns: tableColumns, Rows: rows}
}
