package multiton_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/multiton"
)

func TestAcquireSameNameSameModule(t *testing.T) {
	names := []string{"database", "ui", "auth", "", "Database", "DB1", "with space", "ünïcode"}

	for _, name := range names {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			m := multiton.NewManager()

			a := m.Acquire(name)
			b := m.Acquire(name)
			require.Same(t, a, b)
			assert.Equal(t, name, a.Name())

			a.SetConfig("k", "v")
			got, ok := b.GetConfig("k")
			assert.True(t, ok)
			assert.Equal(t, "v", got)
		})
	}
}

func TestDistinctNamesIndependent(t *testing.T) {
	pairs := [][2]string{
		{"database", "ui"},
		{"Database", "database"},
		{"", " "},
		{"DB1", "DB2"},
	}

	for _, p := range pairs {
		t.Run(p[0]+"|"+p[1], func(t *testing.T) {
			m := multiton.NewManager()
			a := m.Acquire(p[0])
			b := m.Acquire(p[1])
			require.NotSame(t, a, b)
			assert.NotEqual(t, a.InstanceID(), b.InstanceID())

			a.SetConfig("only-a", 1)
			_, ok := b.GetConfig("only-a")
			assert.False(t, ok)
		})
	}
}

func TestDatabaseScenario(t *testing.T) {
	m := multiton.NewManager()

	db := m.Acquire("database")
	db.SetConfig("host", "localhost")
	db.SetConfig("port", 5432)

	again := m.Acquire("database")
	require.Same(t, db, again)

	host, ok := again.GetConfig("host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	port, ok := again.GetConfig("port")
	require.True(t, ok)
	assert.Equal(t, 5432, port)
	assert.Equal(t, 5432, again.Settings().Int("port", 0))
}

func TestGetConfigMissingKeyIsAbsent(t *testing.T) {
	m := multiton.NewManager()
	db := m.Acquire("database")
	db.SetConfig("host", "localhost")

	v, ok := db.GetConfig("timeout")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.NotEqual(t, 0, v)
	assert.NotEqual(t, "", v)
}

func TestGetConfigFalsyValuesArePresent(t *testing.T) {
	m := multiton.NewManager()
	mod := m.Acquire("flags")

	tests := []struct {
		key   string
		value any
	}{
		{"zero", 0},
		{"empty", ""},
		{"off", false},
		{"null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			mod.SetConfig(tt.key, tt.value)
			got, ok := mod.GetConfig(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSetConfigOverwrites(t *testing.T) {
	m := multiton.NewManager()
	ui := m.Acquire("ui")
	ui.SetConfig("theme", "light")
	m.Acquire("ui").SetConfig("theme", "dark")

	theme, ok := ui.GetConfig("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestSnapshot(t *testing.T) {
	m := multiton.NewManager()
	db := m.Acquire("database")
	ui := m.Acquire("ui")
	auth := m.Acquire("auth")

	snap := m.Snapshot()
	require.Len(t, snap, 3)
	assert.Same(t, db, snap["database"])
	assert.Same(t, ui, snap["ui"])
	assert.Same(t, auth, snap["auth"])

	delete(snap, "ui")
	assert.Equal(t, 3, m.Len(), "snapshot is a copy of the mapping")

	assert.Equal(t, []string{"auth", "database", "ui"}, m.Names())
}

func TestLookupDoesNotCreate(t *testing.T) {
	m := multiton.NewManager()

	_, ok := m.Lookup("database")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	db := m.Acquire("database")
	got, ok := m.Lookup("database")
	assert.True(t, ok)
	assert.Same(t, db, got)
}

func TestRepeatedAcquireKeepsSize(t *testing.T) {
	m := multiton.NewManager()
	for _, name := range []string{"database", "ui", "auth"} {
		m.Acquire(name)
	}
	require.Equal(t, 3, m.Len())

	for range 20 {
		for _, name := range []string{"database", "ui", "auth"} {
			m.Acquire(name)
		}
		assert.Equal(t, 3, m.Len())
	}
}

func TestManagersAreIndependent(t *testing.T) {
	a := multiton.NewManager()
	b := multiton.NewManager()

	a.Acquire("database").SetConfig("host", "localhost")

	assert.NotSame(t, a.Acquire("database"), b.Acquire("database"))
	_, ok := b.Acquire("database").GetConfig("host")
	assert.False(t, ok)
}

func TestConcurrentFirstAcquire(t *testing.T) {
	m := multiton.NewManager()
	var wg sync.WaitGroup
	n := 100

	got := make([]*multiton.Module, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mod := m.Acquire("database")
			mod.SetConfig(fmt.Sprintf("k%d", i), i)
			got[i] = mod
		}(i)
	}
	wg.Wait()

	for _, mod := range got {
		assert.Same(t, got[0], mod)
	}
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, n, got[0].Settings().Len())
}

func TestConcurrentManyNames(t *testing.T) {
	m := multiton.NewManager()
	var wg sync.WaitGroup

	for i := range 200 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Acquire(fmt.Sprintf("module-%d", i%20))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, m.Len())
}
