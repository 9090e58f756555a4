package main

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// huhConfirmer asks the user through an interactive terminal prompt.
type huhConfirmer struct{}

func (huhConfirmer) Confirm(prompt string) (bool, error) {
	confirmed := false

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		// Ctrl-C on the prompt is a decline, not a failure.
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}

		return false, err
	}

	return confirmed, nil
}
