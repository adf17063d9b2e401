package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ErrQuit is returned by a Chooser when the operator leaves the session.
var ErrQuit = errors.New("operator quit")

// Chooser asks the operator for input.
type Chooser interface {
	Select(label string, items []string) (int, error)
	Input(label string) (string, error)
}

// Terminal is a Chooser backed by promptui.
type Terminal struct {
	Size int
}

func (t Terminal) Select(label string, items []string) (int, error) {
	size := t.Size
	if size <= 0 {
		size = len(items)
	}

	sel := &promptui.Select{
		Label: label,
		Items: items,
		Size:  size,
	}

	idx, _, err := sel.Run()
	if err != nil {
		return 0, mapErr(err)
	}
	return idx, nil
}

func (t Terminal) Input(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
	}

	value, err := p.Run()
	if err != nil {
		return "", mapErr(err)
	}
	return value, nil
}

func mapErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrQuit
	}
	return err
}
