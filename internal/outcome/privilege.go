package outcome

import (
	"strings"

	"golang.org/x/text/cases"
)

// Privilege decides whether a participant bypasses the failure draw and
// always receives the largest share.
type Privilege interface {
	IsPrivileged(name string) bool
}

// PrivilegeFunc adapts a plain function to Privilege.
type PrivilegeFunc func(name string) bool

func (f PrivilegeFunc) IsPrivileged(name string) bool { return f(name) }

// NoPrivilege treats every participant as ordinary.
var NoPrivilege Privilege = PrivilegeFunc(func(string) bool { return false })

// AllowList matches names exactly, ignoring case.
type AllowList struct {
	names map[string]struct{}
}

// DefaultPrivilegedNames are the names privileged out of the box.
var DefaultPrivilegedNames = []string{"谭煜昇", "yisheng", "医生", "一声"}

func NewAllowList(names ...string) *AllowList {
	l := &AllowList{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if key := fold(n); key != "" {
			l.names[key] = struct{}{}
		}
	}
	return l
}

func DefaultAllowList() *AllowList {
	return NewAllowList(DefaultPrivilegedNames...)
}

func (l *AllowList) IsPrivileged(name string) bool {
	if l == nil {
		return false
	}
	_, ok := l.names[fold(name)]
	return ok
}

// Len reports how many distinct names are on the list.
func (l *AllowList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// fold is the comparison key: trimmed and Unicode case-folded.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
