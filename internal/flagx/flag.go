// Package flagx contains helpers for parsing a subset of the command line
// with an isolated flag.FlagSet.
package flagx

import "strings"

// FilterArgs returns only the arguments belonging to the allowed flags, so
// a FlagSet can parse them without tripping over flags it does not define.
//
// Two forms are recognized:
//  1. flag and value as separate arguments:  -c creds.json
//  2. flag and value joined with '=':        -mode=json
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// A following token that does not look like a flag is this
			// flag's value.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
