package wizard

import (
	"errors"

	"github.com/joshyorko/aptcli/pretty"
)

var (
	ErrNoChoices = errors.New("no choices provided")
)

// ChooseAction renders the action table and returns the key of the chosen
// row. Rows are key/description pairs.
func (it *Console) ChooseAction(title string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoChoices
	}
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row[0])
	}
	it.Printf("%s\n", pretty.RenderTable(title, []string{"Option", "Action"}, rows))
	return it.Choose("Choose an action", keys)
}
