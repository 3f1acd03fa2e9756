package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	copyFlagTypeName            = "copy"
	invalidCopyFlagValueMessage = "invalid copy flag value '%s'"
)

var copyFlagLiterals = map[string]bool{
	"":      true,
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
}

// copyFlagValue implements pflag.Value for the clipboard flag so that a bare
// --copy enables copying while an explicit literal can still disable it.
type copyFlagValue struct {
	target *bool
}

func (value *copyFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	booleanValue, known := copyFlagLiterals[normalized]
	if !known {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	*value.target = booleanValue
	return nil
}

func (value *copyFlagValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return "false"
	}
	return "true"
}

func (value *copyFlagValue) Type() string {
	return copyFlagTypeName
}

func registerCopyFlag(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = false
	flagSet.Var(&copyFlagValue{target: target}, name, usage)
	if flagLookup := flagSet.Lookup(name); flagLookup != nil {
		flagLookup.NoOptDefVal = "true"
	}
}
