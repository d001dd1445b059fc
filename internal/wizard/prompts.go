// Package wizard wraps the interactive prompts the tool walks the operator
// through. Every prompt can be canceled (Ctrl+C), which surfaces as
// ErrCanceled and aborts the current operation cleanly; selection always
// happens before any write.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCanceled is returned when the operator aborts a prompt.
var ErrCanceled = errors.New("canceled")

// IsCanceled reports whether err stems from the operator canceling a prompt.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

func wrap(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCanceled
	}
	return err
}

// Select asks the operator to pick one of options (type-to-filter).
func Select(message string, options []string, pageSize int) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: pageSize,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", wrap(err)
	}
	return choice, nil
}

// Input asks for a free-form line of text.
func Input(message, defaultValue string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", wrap(err)
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func Confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue
	prompt := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, wrap(err)
	}
	return answer, nil
}

const dateLayout = "2006-01-02"

// Date asks for a date in YYYY-MM-DD form, defaulting to def.
func Date(message string, def time.Time) (time.Time, error) {
	var answer string
	prompt := &survey.Input{Message: message, Default: def.Format(dateLayout)}
	validator := func(ans interface{}) error {
		s, _ := ans.(string)
		if _, err := time.Parse(dateLayout, s); err != nil {
			return fmt.Errorf("enter a date as YYYY-MM-DD")
		}
		return nil
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(validator)); err != nil {
		return time.Time{}, wrap(err)
	}
	return time.Parse(dateLayout, answer)
}
