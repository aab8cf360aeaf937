package main

import (
	"sync"
	"testing"

	"github.com/lukpueh/peps/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickMatches(t *testing.T) {
	title := []index.Proposal{{Number: 604, Title: "Complementary syntax for Union[] and Optional[]"}}
	author := []index.Proposal{{Number: 484, Title: "Type Hints"}}

	// A lone author match is still the result, flag or no flag.
	got := pickMatches(nil, author, false)
	require.Len(t, got, 1)
	assert.Equal(t, 484, got[0].Number)

	got = pickMatches(title, author, false)
	require.Len(t, got, 1)
	assert.Equal(t, 604, got[0].Number)

	got = pickMatches(title, author, true)
	require.Len(t, got, 2)
	assert.Equal(t, 604, got[0].Number)
	assert.Equal(t, 484, got[1].Number)

	assert.Empty(t, pickMatches(nil, nil, true))
}

func TestProposalsConcurrent(t *testing.T) {
	b := &botState{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.setProposals([]index.Proposal{{Number: 604}})
		}()
		go func() {
			defer wg.Done()
			_ = b.snapshotProposals()
		}()
	}
	wg.Wait()

	assert.Len(t, b.snapshotProposals(), 1)
}
