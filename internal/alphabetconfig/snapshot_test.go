package alphabetconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSnapshotCap(t *testing.T) {
	snap := NewSnapshot()
	assert.Equal(t, 4, snap.Cap("C", true))
	assert.Equal(t, 3, snap.Cap("N", true))
	assert.Equal(t, 5, snap.Cap("N", false))
}

func TestSetAlphabetOverridesCap(t *testing.T) {
	snap := NewSnapshot()
	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))
	assert.Equal(t, 1, snap.Cap("Li", true))
}

func TestSetAlphabetRejectsNonPositiveCap(t *testing.T) {
	snap := NewSnapshot()
	err := snap.SetAlphabet(map[string]int{"Li": 0})
	require.Error(t, err)
	var conflictErr *AlphabetConflict
	assert.ErrorAs(t, err, &conflictErr)
}

func TestSetAlphabetWithNilResetsToDefaults(t *testing.T) {
	snap := NewSnapshot()
	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))
	require.NoError(t, snap.SetAlphabet(nil))
	assert.Equal(t, 4, snap.Cap("C", true))
	assert.NotContains(t, snap.GetAlphabet(), "[Liexpl]")
}

func TestGetAtomDictIncludesDefaultsAndOverrides(t *testing.T) {
	snap := NewSnapshot()
	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))
	dict := snap.GetAtomDict(true)
	assert.Equal(t, 4, dict["C"])
	assert.Equal(t, 1, dict["Li"])
}

func TestGetAlphabetSurfacesNewlyConfiguredElement(t *testing.T) {
	snap := NewSnapshot()
	before := snap.GetAlphabet()
	assert.NotContains(t, before, "[Liexpl]")

	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))
	after := snap.GetAlphabet()
	assert.Contains(t, after, "[Liexpl]")
	assert.Contains(t, after, "[=Liexpl]")
	assert.Contains(t, after, "[#Liexpl]")
}

func TestGetAlphabetIncludesMetaSymbols(t *testing.T) {
	snap := NewSnapshot()
	alphabetList := snap.GetAlphabet()
	assert.Contains(t, alphabetList, "[epsilon]")
	assert.Contains(t, alphabetList, "[Branch1_1]")
	assert.Contains(t, alphabetList, "[Branch3_3]")
	assert.Contains(t, alphabetList, "[Ring1]")
	assert.Contains(t, alphabetList, "[=ExplRing2]")
	assert.Contains(t, alphabetList, "[#ExplRing3]")
}

func TestGetAtomDictOverrideLeavesOtherDefaultsUntouched(t *testing.T) {
	base := NewSnapshot().GetAtomDict(true)

	snap := NewSnapshot()
	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))
	withLi := snap.GetAtomDict(true)

	want := make(map[string]int, len(base)+1)
	for k, v := range base {
		want[k] = v
	}
	want["Li"] = 1

	if diff := cmp.Diff(want, withLi); diff != "" {
		t.Errorf("atom dict mismatch after override (-want +got):\n%s", diff)
	}
}

func TestGetAlphabetIsStableAcrossCalls(t *testing.T) {
	snap := NewSnapshot()
	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))

	first := snap.GetAlphabet()
	second := snap.GetAlphabet()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("GetAlphabet should return the same order every call (-first +second):\n%s", diff)
	}
}

func TestSnapshotConcurrentReads(t *testing.T) {
	snap := NewSnapshot()
	require.NoError(t, snap.SetAlphabet(map[string]int{"Li": 1}))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			_ = snap.Cap("C", true)
			_ = snap.GetAlphabet()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
