package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("langsync: aborted")

// surveyConfirm asks on the terminal before artifacts are overwritten.
func surveyConfirm(ctx context.Context, paths []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var ok bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s?", strings.Join(paths, " and ")),
		Help:    "Both artifacts are regenerated from the catalog; answering no leaves them untouched.",
		Default: true,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, errAborted
		}
		return false, err
	}
	return ok, nil
}
