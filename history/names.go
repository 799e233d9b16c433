package history

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Namer turns arbitrary keys into readable labels like "BraveOtter". Labels
// are generated lazily and remembered, so the same key always gets the same
// label from one Namer. The same label does not mean the same key across
// runs.
type Namer struct {
	memo map[string]string
}

func NewNamer() *Namer {
	petname.NonDeterministicMode()
	return &Namer{memo: make(map[string]string)}
}

func (n *Namer) Name(key string) string {
	if n.memo == nil {
		n.memo = make(map[string]string)
	}
	if r, ok := n.memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	n.memo[key] = r
	return r
}

// Remember a label that was generated elsewhere, such as one loaded from a
// history file.
func (n *Namer) remember(key, label string) {
	if n.memo == nil {
		n.memo = make(map[string]string)
	}
	if _, ok := n.memo[key]; !ok {
		n.memo[key] = label
	}
}
