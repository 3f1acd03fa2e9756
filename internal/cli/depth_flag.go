package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	depthFlagTypeName        = "depth"
	invalidDepthValueMessage = "invalid depth value '%s'; expected a non-negative integer"
)

// depthFlagValue implements pflag.Value for the optional maximum depth. An
// untouched flag leaves the target nil, which means "no depth bound".
type depthFlagValue struct {
	selected **int
}

func (value *depthFlagValue) Set(input string) error {
	if value == nil || value.selected == nil {
		return fmt.Errorf(invalidDepthValueMessage, input)
	}
	parsedDepth, parseError := strconv.Atoi(strings.TrimSpace(input))
	if parseError != nil || parsedDepth < 0 {
		return fmt.Errorf(invalidDepthValueMessage, input)
	}
	*value.selected = &parsedDepth
	return nil
}

func (value *depthFlagValue) String() string {
	if value == nil || value.selected == nil || *value.selected == nil {
		return ""
	}
	return strconv.Itoa(**value.selected)
}

func (value *depthFlagValue) Type() string {
	return depthFlagTypeName
}

func registerDepthFlag(flagSet *pflag.FlagSet, target **int, name string, shorthand string, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	flagSet.VarP(&depthFlagValue{selected: target}, name, shorthand, usage)
}
