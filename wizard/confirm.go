package wizard

const (
	answerYes = "yes"
	answerNo  = "no"
)

// Confirm asks a yes/no question. There is no default; anything other than
// "yes" or "no" is asked again.
func (it *Console) Confirm(question string) (bool, error) {
	response, err := it.Choose(question, []string{answerYes, answerNo})
	if err != nil {
		return false, err
	}
	return response == answerYes, nil
}
