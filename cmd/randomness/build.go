package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
	"pkg.jsn.cam/randomness/pkg/randomness/uds"
)

// schemeFlags are the flags shared by every command that builds a scheme.
type schemeFlags struct {
	name       string
	descriptor string
	sets       []string

	affix          string
	fixedLength    int
	filler         string
	arrayMin       int
	arrayMax       int
	arraySeparator string
	arrayBrackets  string
}

func (f *schemeFlags) register(cmd *cobra.Command, withSaved bool) {
	flags := cmd.Flags()
	if withSaved {
		flags.StringVar(&f.name, "scheme", "", "start from the saved scheme with this name")
	}
	flags.StringVar(&f.descriptor, "descriptor", "", "UDS descriptor, e.g. 'id-%Int[minValue=1,maxValue=99]'")
	flags.StringArrayVar(&f.sets, "set", nil, "set a scheme field, as key=value (repeatable)")

	flags.StringVar(&f.affix, "affix", "", "wrap each value; '@' marks the value, '\\' escapes")
	flags.IntVar(&f.fixedLength, "fixed-length", 3, "pad or truncate each value to this many characters")
	flags.StringVar(&f.filler, "filler", "0", "single character used for padding")
	flags.IntVar(&f.arrayMin, "array-min", 3, "minimum number of elements per array")
	flags.IntVar(&f.arrayMax, "array-max", 3, "maximum number of elements per array")
	flags.StringVar(&f.arraySeparator, "array-separator", ",", "separator between array elements ('\\n' for newline)")
	flags.StringVar(&f.arrayBrackets, "array-brackets", "[@]", "affix around each array; empty for none")
}

// build resolves the starting scheme from --scheme, the kind argument or
// --descriptor, then applies --descriptor, --set and the decorator flags.
func (f *schemeFlags) build(cmd *cobra.Command, args []string) (scheme.Scheme, error) {
	sch, err := f.base(args)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("descriptor") {
		bound, err := scheme.Bind(sch, "descriptor", f.descriptor)
		if err != nil {
			return nil, err
		}
		if !bound {
			return nil, fmt.Errorf("--descriptor only applies to %s schemes, not %s", uds.Kind, sch.Kind())
		}
	}

	for _, kv := range f.sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		bound, err := scheme.Bind(sch, strings.TrimSpace(key), value)
		if err != nil {
			return nil, err
		}
		if !bound {
			logger.Warn("ignoring unknown field", zap.String("kind", string(sch.Kind())), zap.String("field", key))
		}
	}

	if err := f.applyDecorators(cmd, sch); err != nil {
		return nil, err
	}
	warnIgnored(sch)
	return sch, nil
}

// warnIgnored logs UDS arguments that name no field, which usually means a
// typo such as miniValue for minValue.
func warnIgnored(sch scheme.Scheme) {
	u, ok := sch.(*uds.Scheme)
	if !ok {
		return
	}
	program, err := uds.CompileString(u.Descriptor, nil)
	if err != nil {
		return
	}
	for _, arg := range program.Ignored {
		logger.Warn("ignoring unknown placeholder argument",
			zap.String("key", arg.Key),
			zap.Int("offset", arg.Pos))
	}
}

func (f *schemeFlags) base(args []string) (scheme.Scheme, error) {
	switch {
	case f.name != "":
		if len(args) > 0 {
			return nil, errors.New("give either a kind or --scheme, not both")
		}
		store, err := openStore()
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load(f.name)
	case len(args) > 0:
		return scheme.Get(scheme.Kind(args[0]))
	case f.descriptor != "":
		return uds.NewScheme(), nil
	default:
		return nil, errors.New("a kind, --scheme or --descriptor is required (see 'randomness types')")
	}
}

// applyDecorators overlays the decorator flags onto sch through its JSON
// form, so every kind is handled by field name.
func (f *schemeFlags) applyDecorators(cmd *cobra.Command, sch scheme.Scheme) error {
	flags := cmd.Flags()
	changed := func(names ...string) bool {
		for _, n := range names {
			if flags.Changed(n) {
				return true
			}
		}
		return false
	}

	patch := make(map[string]map[string]any)
	var order []string
	add := func(field string, values map[string]any) {
		patch[field] = values
		order = append(order, field)
	}

	if changed("affix") {
		add("affixDecorator", map[string]any{"enabled": true, "descriptor": f.affix})
	}
	if changed("fixed-length", "filler") {
		add("fixedLengthDecorator", map[string]any{"enabled": true, "length": f.fixedLength, "filler": f.filler})
	}
	if changed("array-min", "array-max", "array-separator", "array-brackets") {
		add("arrayDecorator", map[string]any{
			"enabled":   true,
			"minCount":  f.arrayMin,
			"maxCount":  f.arrayMax,
			"separator": f.arraySeparator,
			"affixDecorator": map[string]any{
				"enabled":    f.arrayBrackets != "",
				"descriptor": f.arrayBrackets,
			},
		})
	}
	if len(patch) == 0 {
		return nil
	}

	entry, _ := scheme.Lookup(sch.Kind())
	for _, field := range order {
		if _, ok := entry.Field(field); !ok {
			return fmt.Errorf("%s schemes have no %s", sch.Kind(), field)
		}
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, sch)
}
