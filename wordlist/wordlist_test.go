package wordlist

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestNewFiltersAndSorts(t *testing.T) {
	is := is.New(t)
	wl := New([]string{
		"zebra", "apple", "Boston", "cat", "dog's", "apple", "it'll", "杏",
	}, 4)
	is.Equal([]string(wl), []string{"apple", "zebra"})
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	in := "talon\nregs\nTalon\nrage\nregs\nray\nowner's\n"
	wl, err := Load(strings.NewReader(in), 4)
	is.NoErr(err)
	is.Equal([]string(wl), []string{"rage", "regs", "talon"})
}

func TestPrefixRange(t *testing.T) {
	is := is.New(t)
	wl := New([]string{"ergo", "glare", "long", "lose", "nose", "ogre", "rage", "regs", "solar", "talon"}, 4)

	is.Equal([]string(wl.PrefixRange("lo")), []string{"long", "lose"})
	is.Equal([]string(wl.PrefixRange("talon")), []string{"talon"})
	is.Equal(len(wl.PrefixRange("x")), 0)
	is.Equal(len(wl.PrefixRange("")), len(wl)) // empty prefix matches everything
}

func TestContains(t *testing.T) {
	is := is.New(t)
	wl := New([]string{"ergo", "rage", "talon"}, 4)
	is.True(wl.Contains("rage"))
	is.True(!wl.Contains("rag"))
	is.True(!wl.Contains("zzzz"))
}

func TestFingerprintStable(t *testing.T) {
	is := is.New(t)
	a := New([]string{"rage", "talon"}, 4)
	b := New([]string{"talon", "rage"}, 4)
	c := New([]string{"talon", "regs"}, 4)
	is.Equal(a.Fingerprint(), b.Fingerprint())
	is.True(a.Fingerprint() != c.Fingerprint())
}
