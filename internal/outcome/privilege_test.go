package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAllowList(t *testing.T) {
	l := DefaultAllowList()
	assert.Equal(t, 4, l.Len())

	for _, name := range []string{"yisheng", "YISHENG", "YiSheng", " yisheng ", "谭煜昇", "医生", "一声"} {
		assert.True(t, l.IsPrivileged(name), name)
	}
	for _, name := range []string{"yi sheng", "yisheng2", "alice", ""} {
		assert.False(t, l.IsPrivileged(name), name)
	}
}

func TestNewAllowList_CustomNames(t *testing.T) {
	l := NewAllowList("Zoë", "", "  ")
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.IsPrivileged("ZOË"))
	assert.False(t, l.IsPrivileged("yisheng"))
}

func TestNilAllowList(t *testing.T) {
	var l *AllowList
	assert.False(t, l.IsPrivileged("yisheng"))
	assert.Equal(t, 0, l.Len())
}

func TestPrivilegeFunc(t *testing.T) {
	p := PrivilegeFunc(func(name string) bool { return name == "boss" })
	assert.True(t, p.IsPrivileged("boss"))
	assert.False(t, p.IsPrivileged("Boss"))
	assert.False(t, NoPrivilege.IsPrivileged("yisheng"))
}
