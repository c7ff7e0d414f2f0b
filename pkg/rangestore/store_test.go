package rangestore

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"headsup-analyzer/internal/config"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/preflop"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := LoadFile("testdata/range.json")
	require.NoError(t, err)
	return s
}

func combos(t *testing.T, notation string) []combo.Combo {
	t.Helper()

	c, err := combo.ParseCombos(notation)
	require.NoError(t, err)
	return c
}

func names(patterns []*Pattern) []string {
	n := make([]string, len(patterns))
	for i, p := range patterns {
		n[i] = p.Name
	}

	return n
}

func position(p preflop.Position) *preflop.Position {
	return &p
}

func TestLoadFile(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)

	a.Equal(5, s.Len())

	p := s.Patterns()[1]
	a.Equal("CO open", p.Name)
	a.Equal(preflop.Open, p.Action)
	a.Equal(preflop.CO, p.Me)
	a.Equal(preflop.NONE, p.Opponent)
	a.Equal("55+,A8s+,ATo+", p.Raw)
	a.Equal(60+24+48, p.Combos.Len())
}

func TestLoadFile_yaml(t *testing.T) {
	s, err := LoadFile("testdata/range.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"BTN open", "IP 4bet"}, names(s.Patterns()))
	assert.Equal(t, preflop.FourBet, s.Patterns()[1].Action)
}

func TestLoadFile_errors(t *testing.T) {
	var cle *ConfigLoadError

	_, err := LoadFile("testdata/missing.json")
	assert.True(t, errors.As(err, &cle))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadFile("testdata/malformed.json")
	assert.True(t, errors.As(err, &cle))

	_, err = LoadFile("testdata/invalid_position.json")
	assert.True(t, errors.As(err, &cle))
	assert.EqualError(t, err, "could not load ranges from pattern 0 (HJ open): invalid position: hj")

	_, err = New([]Record{{Name: "bad hands", Action: "open", Me: "btn", Opponent: "none", Hands: "AKx"}})
	assert.True(t, errors.As(err, &cle))
	var pe *combo.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestStore_Patterns_isCopy(t *testing.T) {
	s := testStore(t)
	patterns := s.Patterns()
	patterns[0] = nil

	assert.NotNil(t, s.Patterns()[0])
}

func TestStore_Find(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)

	p, err := s.Find(preflop.Key{Position: preflop.BB, Opponent: preflop.BTN, Action: preflop.Call})
	a.NoError(err)
	a.Equal("BB call vs BTN", p.Name)

	p, err = s.Find(preflop.Resolve(preflop.CO, preflop.BB, preflop.ThreeBet))
	a.NoError(err)
	a.Equal("IP 3bet call", p.Name)

	key := preflop.Key{Position: preflop.SB, Opponent: preflop.BTN, Action: preflop.Call}
	p, err = s.Find(key)
	a.Nil(p)

	var rnf *RangeNotFoundError
	a.True(errors.As(err, &rnf))
	a.Equal(key, rnf.Key)
	a.EqualError(err, "can't find range. SB vs. BTN : CALL")
}

func TestStore_FindByName(t *testing.T) {
	s := testStore(t)

	p, ok := s.FindByName("CO open")
	assert.True(t, ok)
	assert.Equal(t, preflop.CO, p.Me)

	_, ok = s.FindByName("UTG open")
	assert.False(t, ok)
}

func TestStore_MatchingRanges(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)

	a.Equal([]string{"BTN open", "CO open", "IP 3bet call", "OOP 3bet call"},
		names(s.MatchingRanges(combos(t, "AQo"), nil)))

	// 22 is opened from the button and called in the big blind
	a.Equal([]string{"BTN open", "BB call vs BTN"}, names(s.MatchingRanges(combos(t, "22"), nil)))

	// every combo must match, not just one
	a.Equal([]string{"BTN open"}, names(s.MatchingRanges(combos(t, "22,KTs"), nil)))
	a.Empty(s.MatchingRanges(combos(t, "72o"), nil))

	// a single combo
	a.Equal([]string{"BTN open", "CO open", "BB call vs BTN", "IP 3bet call"}, names(s.MatchingRanges(combos(t, "AhJh"), nil)))
}

func TestStore_MatchingRanges_positionFilter(t *testing.T) {
	a := assert.New(t)
	s := testStore(t)

	// IP and OOP ranges always pass the filter
	a.Equal([]string{"BTN open", "IP 3bet call", "OOP 3bet call"},
		names(s.MatchingRanges(combos(t, "AQo"), position(preflop.BTN))))

	a.Equal([]string{"BB call vs BTN", "IP 3bet call", "OOP 3bet call"},
		names(s.MatchingRanges(combos(t, "99"), position(preflop.BB))))
}

func TestStore_MatchingRanges_emptySample(t *testing.T) {
	s := testStore(t)

	assert.Len(t, s.MatchingRanges(nil, nil), 5)
	assert.Equal(t, []string{"CO open", "IP 3bet call", "OOP 3bet call"},
		names(s.MatchingRanges([]combo.Combo{}, position(preflop.CO))))
}

func TestLoad(t *testing.T) {
	a := assert.New(t)

	c := config.DefaultConfig()
	c.RangesFile = "testdata/range.yaml"
	s, err := Load(context.Background(), c)
	a.NoError(err)
	a.NotZero(s.Len())

	c.RangeSource = "s3"
	_, err = Load(context.Background(), c)
	var cle *ConfigLoadError
	a.True(errors.As(err, &cle))
	a.Equal("s3", cle.Source)
}
