package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary shapes into random readable names. A Namer holds on
// to every object it has named, but generates the names lazily, so it's not a
// problem unless you're actually using it. Shapes that the user didn't name are
// much easier to tell apart in a report as "BraveOtter" than as a pointer.

// A Namer hands out stable readable names. The zero value is ready to use, and
// a Namer is safe for concurrent use.
type Namer struct {
	mu   sync.Mutex
	memo map[interface{}]string
}

var defaultNamer Namer

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same shape between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj, which should be a pointer. The
// same pointer always gets the same name from the same Namer.
func (n *Namer) Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if r, ok := n.memo[obj]; ok {
		return r
	}
	if n.memo == nil {
		n.memo = make(map[interface{}]string)
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	n.memo[obj] = r
	return r
}

// Len is the number of objects named so far.
func (n *Namer) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.memo)
}

// Name uses a process-wide Namer. Everything it names stays reachable, so
// prefer a dedicated Namer for anything long-lived.
func Name(obj interface{}) string {
	return defaultNamer.Name(obj)
}
