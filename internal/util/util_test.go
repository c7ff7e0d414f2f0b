package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)
	a.Equal("fallback", Getenv("HEADSUP_TEST_GETENV", "fallback"))

	restore := SetEnv("HEADSUP_TEST_GETENV", "")
	a.Equal("fallback", Getenv("HEADSUP_TEST_GETENV", "fallback"))
	restore()

	restore = SetEnv("HEADSUP_TEST_GETENV", "set")
	defer restore()
	a.Equal("set", Getenv("HEADSUP_TEST_GETENV", "fallback"))
}

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	_, found := os.LookupEnv("HEADSUP_TEST_SETENV")
	a.False(found)

	restore1 := SetEnv("HEADSUP_TEST_SETENV", "one")
	a.Equal("one", os.Getenv("HEADSUP_TEST_SETENV"))

	restore2 := SetEnv("HEADSUP_TEST_SETENV", "two")
	a.Equal("two", os.Getenv("HEADSUP_TEST_SETENV"))
	restore2()
	a.Equal("one", os.Getenv("HEADSUP_TEST_SETENV"))
	restore1()

	_, found = os.LookupEnv("HEADSUP_TEST_SETENV")
	a.False(found)
}

func TestRound2(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.67, Round2(0.6666))
	a.Equal(0.5, Round2(0.5))
	a.Equal(1.0, Round2(0.999))
	a.Equal(Round2(0.57), Round2(Round2(0.57)))
}
