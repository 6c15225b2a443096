package dbg

import "github.com/kr/pretty"

// Dump renders any value as indented Go syntax, for debug logging.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}
