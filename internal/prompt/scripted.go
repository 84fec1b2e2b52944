package prompt

import "fmt"

// Scripted answers prompts from a fixed list, in order. It records every
// label and message it was asked.
type Scripted struct {
	Answers []string
	Asked   []string
}

func (s *Scripted) Ask(label string) (string, error) {
	s.Asked = append(s.Asked, label)
	for {
		answer, err := s.next(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

func (s *Scripted) Confirm(message string) (bool, error) {
	s.Asked = append(s.Asked, message)
	answer, err := s.next(message)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

func (s *Scripted) next(label string) (string, error) {
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoInput, label)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

// Always confirms or refuses every confirmation without reading input.
// Ask always fails, so callers must supply every value up front.
type Always bool

func (a Always) Ask(label string) (string, error) {
	return "", fmt.Errorf("%w: %q", ErrNoInput, label)
}

func (a Always) Confirm(string) (bool, error) {
	return bool(a), nil
}
