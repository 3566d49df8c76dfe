// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/pdldiff/pdldiff/internal/pdl"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// SortValidator rejects ordering values the pdl package does not know,
// before any parsing work happens.
func SortValidator(value any) error {
	s, _ := value.(string)
	_, err := pdl.ParseOrder(s)
	return err
}

func FormatValidator(value any) error {
	var validFormatFlagValues = []string{"html", "text"}
	valid := false
	for _, v := range validFormatFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validFormatFlagValues)
	}
	return nil
}
